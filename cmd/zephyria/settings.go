package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rusenback/zephyria/internal/config"
)

// addShowcaseFlags registers the flags shared by tui and serve
func addShowcaseFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("preset", "p", "", "Chart preset (performance, pulse or one from the config file)")
	cmd.Flags().Uint64P("seed", "s", 0, "Random seed, 0 picks one from the clock")
}

// bindShowcaseFlags points the shared keys at cmd's flags. Called from the
// running command so the bare root and the tui subcommand do not clash.
func bindShowcaseFlags(v *viper.Viper, cmd *cobra.Command) {
	_ = v.BindPFlag("preset", cmd.Flags().Lookup("preset"))
	_ = v.BindPFlag("seed", cmd.Flags().Lookup("seed"))
	if f := cmd.Flags().Lookup("addr"); f != nil {
		_ = v.BindPFlag("addr", f)
	}
}

// loadConfiguration reads the config file and applies flag and env overrides.
// A missing default file is not an error; an explicitly named one is.
func loadConfiguration(v *viper.Viper, cmd *cobra.Command) (*config.Config, error) {
	bindShowcaseFlags(v, cmd)

	path := v.GetString("config")
	if path == "" {
		path = config.DefaultConfigFile
	}
	explicit := cmd.Flags().Changed("config") || os.Getenv(envPrefix+"_CONFIG") != ""

	cfg, err := config.Load(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		cfg = config.Default()
	default:
		return nil, err
	}

	if err := applyOverrides(v, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyOverrides copies set flag and env values onto cfg
func applyOverrides(v *viper.Viper, cfg *config.Config) error {
	if v.IsSet("preset") && v.GetString("preset") != "" {
		cfg.Preset = v.GetString("preset")
	}
	if v.IsSet("seed") {
		cfg.Seed = v.GetUint64("seed")
	}
	if v.IsSet("addr") && v.GetString("addr") != "" {
		cfg.Web.Addr = v.GetString("addr")
	}
	if v.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
