package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/webskel/webskel/cli/configure"
	init_pkg "github.com/webskel/webskel/cli/init"
	"github.com/webskel/webskel/cli/util"
)

// NewInitCmd creates a new init command. It generates a default webskel
// configuration file in the current directory.
func NewInitCmd() *cobra.Command {
	var initCtx init_pkg.InitCtx

	initCmd := &cobra.Command{
		Use:   "init [flags]",
		Short: "Create webskel configuration file in current directory",
		Run: func(cmd *cobra.Command, args []string) {
			init_pkg.FillCtx(&initCtx)
			if err := init_pkg.Run(&initCtx); err != nil {
				util.HandleCmdErr(cmd, err)
			}
		},
		Args: cobra.ExactArgs(0),
	}

	initCmd.Flags().BoolVarP(&initCtx.ForceMode, "force", "f", false,
		fmt.Sprintf("Overwrite an existing %s", configure.ConfigName))
	initCmd.Flags().StringVarP(&initCtx.DefaultTemplate, "default-template", "", "",
		"Default template name to set in the configuration")

	return initCmd
}
