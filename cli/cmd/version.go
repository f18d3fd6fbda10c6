package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/webskel/webskel/cli/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var showShort, needCommit bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show webskel version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.GetVersion(showShort, needCommit))
		},
		Args: cobra.ExactArgs(0),
	}

	versionCmd.Flags().BoolVar(&showShort, "short", false, "Print only the version number")
	versionCmd.Flags().BoolVar(&needCommit, "commit", false, "Include the commit hash")

	return versionCmd
}
