package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/wl/internal/cli"
	"github.com/xolan/wl/internal/cli/handlers"
)

var removeYesFlag bool

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a workout",
	Long: `Add a workout title. Words are joined with spaces, so quoting is optional.

A title with a bundled template (Workout, Legs, Core) starts with its default
exercises the first time it is opened.

Example:
  wl add Legs
  wl add Morning stretch`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := strings.Join(args, " ")
		withServices(func(d *cli.Deps) { handlers.AddWorkout(d, title) })
	},
}

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm <index>",
	Short: "Remove a workout by index",
	Long: `Remove a workout by its index number as shown by 'wl'.
A confirmation prompt will be shown unless --yes is specified.

The workout's exercises are kept and come back if the title is added again.

Example:
  wl rm 2
  wl rm 2 --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withServices(func(d *cli.Deps) { handlers.RemoveWorkout(d, args[0], removeYesFlag) })
	},
}

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "List the exercises of a workout",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := strings.Join(args, " ")
		withServices(func(d *cli.Deps) { handlers.ShowWorkout(d, title) })
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(showCmd)

	rmCmd.Flags().BoolVarP(&removeYesFlag, "yes", "y", false, "skip confirmation prompt")
}
