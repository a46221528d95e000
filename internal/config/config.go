package config

import (
	"fmt"
	"sort"
	"time"
)

const (
	DefaultConfigFile = "zephyria.yaml"
	DefaultAddr       = ":8080"
	DefaultFrameRate  = 100 * time.Millisecond
	DefaultEventLimit = 50
)

// Config is the top-level configuration
type Config struct {
	Preset  string            `yaml:"preset"`
	Seed    uint64            `yaml:"seed"`
	Presets map[string]Preset `yaml:"-"`
	Web     WebConfig         `yaml:"web"`
	TUI     TUIConfig         `yaml:"tui"`
	Log     LogConfig         `yaml:"log"`
}

// WebConfig configures the HTTP showcase
type WebConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Chart           bool          `yaml:"chart"`
}

// TUIConfig configures the terminal showcase
type TUIConfig struct {
	AltScreen  bool          `yaml:"alt_screen"`
	FrameRate  time.Duration `yaml:"frame_rate"`
	EventLimit int           `yaml:"event_limit"`
	LogFile    string        `yaml:"log_file"`
}

// LogConfig configures structured logging
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Preset:  PresetPerformance,
		Presets: BuiltinPresets(),
		Web: WebConfig{
			Addr:            DefaultAddr,
			ReadTimeout:     10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			Chart:           true,
		},
		TUI: TUIConfig{
			AltScreen:  true,
			FrameRate:  DefaultFrameRate,
			EventLimit: DefaultEventLimit,
			LogFile:    "zephyria.log",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ActivePreset returns the selected preset
func (c *Config) ActivePreset() (Preset, error) {
	return c.Lookup(c.Preset)
}

// Lookup returns the named preset
func (c *Config) Lookup(name string) (Preset, error) {
	p, ok := c.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q (have %v)", ErrUnknownPreset, name, c.PresetNames())
	}
	return p, nil
}

// PresetNames returns the preset names in sorted order
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the whole configuration
func (c *Config) Validate() error {
	if _, err := c.ActivePreset(); err != nil {
		return err
	}
	for _, name := range c.PresetNames() {
		if err := c.Presets[name].Validate(); err != nil {
			return fmt.Errorf("%w: preset %q: %w", ErrInvalidConfig, name, err)
		}
	}
	if c.Web.Addr == "" {
		return errorf("web.addr is required")
	}
	if c.TUI.FrameRate <= 0 {
		return errorf("tui.frame_rate must be positive")
	}
	if c.TUI.EventLimit < 1 {
		return errorf("tui.event_limit must be at least 1")
	}
	return nil
}

func errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
