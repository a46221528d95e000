package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rusenback/zephyria/internal/config"
)

const envPrefix = "ZEPHYRIA"

// settings binds flags and ZEPHYRIA_* environment variables
var settings = newSettings()

var rootCmd = &cobra.Command{
	Use:           "zephyria",
	Short:         "Zephyria live performance showcase",
	Version:       GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: false,
	Long: `Zephyria renders the Zephyria landing page with a live performance chart.

Run it in the terminal (the default) or serve it to browsers over HTTP.
Every view owns its own simulated telemetry window.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func newSettings() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultConfigFile, "Configuration file path")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	// the bare command runs the terminal showcase
	addShowcaseFlags(rootCmd)

	_ = settings.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = settings.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func Execute() {
	rootCmd.SetVersionTemplate(GetVersionInfo() + "\n")
	if err := rootCmd.Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

func main() {
	Execute()
}
