package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Print a completion script for your shell.

Besides commands and flags, the script completes workout titles for
'wl show', 'wl reset', 'wl timer' and the 'wl entry' commands, read from
your saved workouts at the moment you press tab.

Try it in the current shell:
  bash:       source <(wl completion bash)
  zsh:        source <(wl completion zsh)
  fish:       wl completion fish | source
  powershell: wl completion powershell | Out-String | Invoke-Expression

Install it for every new shell:
  bash:       wl completion bash > ~/.local/share/bash-completion/completions/wl
  zsh:        wl completion zsh > "${fpath[1]}/_wl"
  fish:       wl completion fish > ~/.config/fish/completions/wl.fish
  powershell: add the line above to $PROFILE`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)

	for _, c := range []*cobra.Command{showCmd, resetCmd, timerCmd, entryAddCmd, entryEditCmd, entryRmCmd, entryMvCmd} {
		c.ValidArgsFunction = completeTitles
	}
}

// generateCompletion generates the appropriate completion script based on shell type
func generateCompletion(shell string) {
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(deps.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(deps.Stderr, "Supported shells: bash, zsh, fish, powershell")
		deps.Exit(1)
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(1)
		return
	}
}

// completeTitles completes the workout title in the first argument position.
func completeTitles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	services, err := deps.Services()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer func() { _ = services.Close() }()

	var titles []string
	for _, title := range services.Workouts.Titles() {
		if strings.HasPrefix(strings.ToLower(title), strings.ToLower(toComplete)) {
			titles = append(titles, title)
		}
	}
	return titles, cobra.ShellCompDirectiveNoFileComp
}
