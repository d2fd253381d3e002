package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/wl/internal/cli"
	"github.com/xolan/wl/internal/cli/handlers"
)

var resetYesFlag bool

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset <title>",
	Short: "Restore a workout's default exercises",
	Long: `Replace every exercise of a workout with its default template, discarding
all edits. Workouts without a template become empty.
A confirmation prompt will be shown unless --yes is specified.

Example:
  wl reset Legs
  wl reset Legs --yes`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := strings.Join(args, " ")
		withServices(func(d *cli.Deps) { handlers.ResetWorkout(d, title, resetYesFlag) })
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetYesFlag, "yes", "y", false, "skip confirmation prompt")
}
