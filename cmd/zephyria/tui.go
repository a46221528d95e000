package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rusenback/zephyria/internal/logger"
	"github.com/rusenback/zephyria/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the terminal showcase",
	Long: `Render the landing page in the terminal with a live chart that ticks
until you quit. Logs go to the file named by tui.log_file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	addShowcaseFlags(tuiCmd)
}

var errNoTerminal = errors.New("the terminal showcase needs an interactive terminal, try 'zephyria serve'")

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runTUI(cmd *cobra.Command) error {
	cfg, err := loadConfiguration(settings, cmd)
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdout) {
		return errNoTerminal
	}

	// The alt screen owns stderr, so logs go to a file
	f, err := logger.OpenFile(cfg.TUI.LogFile, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer f.Close()
	logger.Info("terminal showcase starting", "preset", cfg.Preset, "seed", cfg.Seed)

	opts := []tea.ProgramOption{}
	if cfg.TUI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(tui.NewModel(cfg), opts...)
	if _, err := p.Run(); err != nil {
		logger.Error("terminal showcase failed", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("terminal showcase stopped")
	return nil
}
