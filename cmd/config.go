package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/wl/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for wl.

Shows the configuration file location, whether it exists, and all current settings.
Configuration values are merged from the config file with sensible defaults.

By default, wl works without any configuration file. All settings have defaults:
  - data_dir: data directory next to the config file
  - backend: file
  - default_workout: Workout
  - bell: true
  - theme: dracula
  - log_level: warn

Configuration file location:
  ~/.config/wl/config.toml           Linux
  ~/Library/Application Support/wl   macOS
  %APPDATA%\wl\config.toml           Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withServices(handlers.ShowConfig)
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample config file",
	Long:  `Write a commented config file with every setting at its default. An existing file is never overwritten.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withServices(handlers.InitConfig)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}
