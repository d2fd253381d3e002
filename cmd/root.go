package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/wl/internal/app"
	"github.com/xolan/wl/internal/cli/handlers"
)

var rootCmd = &cobra.Command{
	Use:   app.Name,
	Short: "Workout lists with a countdown timer",
	Long: `wl keeps named workout lists of exercises, each counted in repetitions or
seconds, and runs a countdown for timed exercises.

Usage:
  wl                                   List workouts
  wl add <title>                       Add a workout
  wl rm <index>                        Remove a workout (with confirmation)
  wl show <title>                      List the exercises of a workout
  wl entry add <title> <exercise> <value> [--secs]
  wl entry edit <title> <index> --label 'text' --value 10
  wl entry rm <title> <index>
  wl entry mv <title> <from> <to>
  wl reset <title>                     Restore the default exercises
  wl timer <title> <index>             Count down a timed exercise
  wl tui                               Launch the interactive terminal UI

Indices are 1-based, as shown by 'wl' and 'wl show'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		withServices(handlers.ListWorkouts)
	},
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		app.Name + " version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
