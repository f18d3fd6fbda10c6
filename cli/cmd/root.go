package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
	"github.com/webskel/webskel/cli/cmdcontext"
	"github.com/webskel/webskel/cli/config"
	"github.com/webskel/webskel/cli/configure"
	"github.com/webskel/webskel/cli/util"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.CliOpts
	rootCmd *cobra.Command
)

// NewCmdRoot assembles the root command and its subcommands.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "webskel <PROJECT_NAME> [flags]",
		Short: "Scaffolding tool for web service projects",
		Long: `Webskel creates a web service project from a template.
The project name may contain latin letters, digits, underscore and hyphen.`,
		Example: `
# Create a project app1 from the default template.

    $ webskel app1

# Create a project in /opt/projects, force replacing of the project
# directory (app1) if it exists. User interaction is disabled.

    $ webskel app1 -f --non-interactive --dst /opt/projects

# Create a project from a custom template found in the configured
# template search paths.

    $ webskel app1 --template library`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := internalCreateProject(&cmdCtx, args); err != nil {
				util.HandleCmdErr(cmd, err)
			}
		},
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: projectNameCompletion,
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose output")

	addCreateFlags(rootCmd)

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewCompletionCmd(),
		NewTemplatesCmd(),
		NewInitCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// projectNameCompletion provides no completion for the project name
// argument, it names a directory to be created.
func projectNameCompletion(
	_ *cobra.Command,
	args []string,
	toComplete string,
) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf(err.Error())
	}
}

// InitRoot initializes global flags and loads webskel configuration.
func InitRoot() {
	rootCmd = NewCmdRoot()
	rootCmd.ParseFlags(os.Args)

	if err := configure.Cli(&cmdCtx); err != nil {
		log.Fatalf("Failed to configure webskel: %s", err)
	}

	var err error
	cliOpts, _, err = configure.GetCliOpts(cmdCtx.Cli.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to get webskel configuration: %s", err)
	}
}
