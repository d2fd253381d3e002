package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/xolan/wl/internal/cli"
	"github.com/xolan/wl/internal/cli/handlers"
)

// timerCmd represents the timer command
var timerCmd = &cobra.Command{
	Use:   "timer <title> <index>",
	Short: "Count down a timed exercise",
	Long: `Count down the exercise at the given index in the foreground, printing the
remaining time every second. The terminal bell rings when it finishes (see the
bell setting). Press Ctrl-C to stop early.

Example:
  wl timer Workout 4`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		withServices(func(d *cli.Deps) { handlers.RunTimer(ctx, d, args[0], args[1]) })
	},
}

func init() {
	rootCmd.AddCommand(timerCmd)
}
