package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/webskel/webskel/cli/create"
)

// NewTemplatesCmd creates a new templates command.
func NewTemplatesCmd() *cobra.Command {
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "List available project templates",
		Long: `List available project templates.

The list includes built-in templates and templates found in the
search paths of the webskel configuration file.`,
		Run: func(cmd *cobra.Command, args []string) {
			create.ListTemplates(cliOpts, os.Stdout)
		},
		Args: cobra.ExactArgs(0),
	}

	return templatesCmd
}
