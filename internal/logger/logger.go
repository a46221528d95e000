// Package logger provides the process-wide structured logger.
//
// It wraps log/slog with a package-level DefaultLogger so that every package
// logs through the same handler. The level comes from LOG_LEVEL at startup and
// can be changed later with Configure.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// DefaultLogger is the global structured logger instance
var DefaultLogger *slog.Logger

func init() {
	level := slog.LevelInfo
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		if l, err := ParseLevel(env); err == nil {
			level = l
		}
	}
	DefaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps a level name onto slog.Level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Configure replaces DefaultLogger with a handler writing to w.
// format is "text" or "json".
func Configure(level, format string, w io.Writer) error {
	l, err := ParseLevel(level)
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: l}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	DefaultLogger = slog.New(h)
	return nil
}

// OpenFile points DefaultLogger at a file, for hosts that own the terminal.
// The caller closes the returned file.
func OpenFile(path, level, format string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if err := Configure(level, format, f); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// With returns DefaultLogger with attributes attached
func With(args ...any) *slog.Logger {
	return DefaultLogger.With(args...)
}

func Info(msg string, args ...any) {
	DefaultLogger.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	DefaultLogger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	DefaultLogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	DefaultLogger.Error(msg, args...)
}

// DebugContext logs at debug level with ctx
func DebugContext(ctx context.Context, msg string, args ...any) {
	DefaultLogger.DebugContext(ctx, msg, args...)
}

// InfoContext logs at info level with ctx
func InfoContext(ctx context.Context, msg string, args ...any) {
	DefaultLogger.InfoContext(ctx, msg, args...)
}
