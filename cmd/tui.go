package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/wl/internal/cli"
	"github.com/xolan/wl/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for wl.

Screens:
  - Workouts: browse, add and remove workouts
  - Exercises: browse and edit a workout, run countdowns

Keyboard shortcuts:
  - j/k or arrows: Navigate within lists
  - enter: Open a workout / start or stop a countdown
  - n: New workout or exercise, i: edit the selected exercise
  - e: Toggle editing mode (J/K move, d delete, R reset)
  - t/T: Cycle themes, c: Settings
  - esc: Back
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

// runTUI initializes and runs the TUI application
func runTUI() {
	// TODO: send logs to a file while the TUI owns the terminal; stderr output at
	// log_level debug draws over the alt screen.
	withServices(func(d *cli.Deps) {
		if err := tui.Run(d.Services); err != nil {
			d.Fail("Failed to run TUI", err, "")
		}
	})
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
