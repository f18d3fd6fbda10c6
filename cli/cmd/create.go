package cmd

import (
	"github.com/spf13/cobra"
	"github.com/webskel/webskel/cli/cmdcontext"
	"github.com/webskel/webskel/cli/create"
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/util"
)

var (
	templateName       string
	dstPath            string
	forceMode          bool
	nonInteractiveMode bool
	varsFromCli        *[]string
	varsFile           string

	// errNoProjectName is returned if the project name argument
	// was not provided.
	errNoProjectName = util.NewArgError("project name is required")
)

// addCreateFlags adds project creation flags to the command.
func addCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&templateName, "template", "t", "",
		"Template name. The default one is used if not specified")
	cmd.Flags().BoolVarP(&forceMode, "force", "f", false,
		"Overwrite the project directory if it already exists")
	cmd.Flags().BoolVarP(&nonInteractiveMode, "non-interactive", "s", false,
		"Non-interactive mode")

	varsFromCli = cmd.Flags().StringArray("var", []string{},
		"Template variable definition. Usage: --var var_name=value")
	cmd.Flags().StringVarP(&varsFile, "vars-file", "", "", "Variables definition file path")
	cmd.Flags().StringVarP(&dstPath, "dst", "d", "",
		"Path to the directory where the project will be created")

	cmd.RegisterFlagCompletionFunc("template", templateNameCompletion)
}

// templateNameCompletion returns valid template names for the --template flag.
func templateNameCompletion(
	_ *cobra.Command,
	args []string,
	toComplete string,
) ([]string, cobra.ShellCompDirective) {
	return create.TemplateNames(cliOpts), cobra.ShellCompDirectiveNoFileComp
}

// internalCreateProject creates a project from a template.
func internalCreateProject(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	if len(args) == 0 {
		return errNoProjectName
	}

	createCtx := create_ctx.CreateCtx{
		TemplateName:   templateName,
		ForceMode:      forceMode,
		SilentMode:     nonInteractiveMode,
		VarsFromCli:    *varsFromCli,
		VarsFile:       varsFile,
		DestinationDir: dstPath,
		Verbose:        cmdCtx.Cli.Verbose,
	}

	if err := create.FillCtx(cliOpts, &createCtx, args); err != nil {
		return err
	}

	return create.Run(&createCtx)
}
