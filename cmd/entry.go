package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/wl/internal/cli"
	"github.com/xolan/wl/internal/cli/handlers"
	"github.com/xolan/wl/internal/workout"
)

var secsFlag bool

// entryCmd groups the exercise commands
var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Add, edit, remove or reorder exercises",
	Long: `Manage the exercises of a workout.

Each exercise has a label and a value. The value is a repetition count, or a
duration in seconds for exercises added with --secs; only those can be timed.`,
}

// entryAddCmd represents the entry add command
var entryAddCmd = &cobra.Command{
	Use:   "add <title> <exercise> <value>",
	Short: "Append an exercise to a workout",
	Long: `Append an exercise to a workout.

Example:
  wl entry add Legs Squats 15
  wl entry add Legs "Wall sit" 45 --secs`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		kind := workout.Reps
		if secsFlag {
			kind = workout.Seconds
		}
		withServices(func(d *cli.Deps) { handlers.AddEntry(d, args[0], args[1], args[2], kind) })
	},
}

// entryEditCmd represents the entry edit command
var entryEditCmd = &cobra.Command{
	Use:   "edit <title> <index>",
	Short: "Edit an exercise in place",
	Long: `Edit the label and/or value of an exercise. The exercise keeps its position
and its unit. At least one flag (--label or --value) is required.

Example:
  wl entry edit Legs 2 --value 20
  wl entry edit Legs 2 --label 'Goblet squats' --value 12`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var label, value *string
		if cmd.Flags().Changed("label") {
			s, _ := cmd.Flags().GetString("label")
			label = &s
		}
		if cmd.Flags().Changed("value") {
			s, _ := cmd.Flags().GetString("value")
			value = &s
		}
		withServices(func(d *cli.Deps) { handlers.EditEntry(d, args[0], args[1], label, value) })
	},
}

// entryRmCmd represents the entry rm command
var entryRmCmd = &cobra.Command{
	Use:   "rm <title> <index>",
	Short: "Delete an exercise",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		withServices(func(d *cli.Deps) { handlers.RemoveEntry(d, args[0], args[1]) })
	},
}

// entryMvCmd represents the entry mv command
var entryMvCmd = &cobra.Command{
	Use:   "mv <title> <from> <to>",
	Short: "Move an exercise to another position",
	Long: `Move an exercise so that it ends up at the target position. The other
exercises keep their order.

Example:
  wl entry mv Legs 4 1`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		withServices(func(d *cli.Deps) { handlers.MoveEntry(d, args[0], args[1], args[2]) })
	},
}

func init() {
	rootCmd.AddCommand(entryCmd)
	entryCmd.AddCommand(entryAddCmd)
	entryCmd.AddCommand(entryEditCmd)
	entryCmd.AddCommand(entryRmCmd)
	entryCmd.AddCommand(entryMvCmd)

	entryAddCmd.Flags().BoolVarP(&secsFlag, "secs", "s", false, "value is a duration in seconds")
	entryEditCmd.Flags().String("label", "", "new exercise label")
	entryEditCmd.Flags().String("value", "", "new value")
}
