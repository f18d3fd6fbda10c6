package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/webskel/webskel/cli/util"
)

const (
	shellBash = "bash"
	shellZsh  = "zsh"
	shellFish = "fish"
)

var supportedShells = []string{shellBash, shellZsh, shellFish}

// NewCompletionCmd creates a command printing shell completion scripts.
func NewCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "completion <SHELL_TYPE>",
		Short: "Generate a completion script for the given shell. " +
			"Supported shells: " + strings.Join(supportedShells, " | "),
		ValidArgs: supportedShells,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			if err := internalCompletionCmd(args); err != nil {
				util.HandleCmdErr(cmd, err)
			}
		},
		Example: `
# Load completion into the current bash session.

    $ . <(webskel completion bash)`,
	}

	return cmd
}

// internalCompletionCmd generates a completion script for the given shell.
func internalCompletionCmd(args []string) error {
	switch shell := args[0]; shell {
	case shellBash:
		return rootCmd.GenBashCompletionV2(os.Stdout, true)
	case shellZsh:
		return rootCmd.GenZshCompletion(os.Stdout)
	case shellFish:
		return rootCmd.GenFishCompletion(os.Stdout, true)
	default:
		return fmt.Errorf("shell %q is not supported. Available: %s",
			shell, strings.Join(supportedShells, " | "))
	}
}
