package create

import (
	"fmt"
	"os"

	"github.com/webskel/webskel/cli/config"
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
	"github.com/webskel/webskel/cli/create/internal/steps"
	"github.com/webskel/webskel/cli/util"
	"github.com/webskel/webskel/cli/version"
)

// DefaultTemplateName is the template used when neither the command line
// nor the configuration file selects one.
const DefaultTemplateName = "webservice"

// FillCtx fills the create context from CLI options and arguments.
func FillCtx(cliOpts *config.CliOpts, createCtx *create_ctx.CreateCtx, args []string) error {
	for _, p := range cliOpts.Templates {
		createCtx.TemplateSearchPaths = append(createCtx.TemplateSearchPaths, p.Path)
	}

	if len(args) >= 1 {
		createCtx.ProjectName = args[0]
	} else {
		return fmt.Errorf("missing project name argument. " +
			"Try `webskel --help` for more information")
	}

	if createCtx.TemplateName == "" {
		if cliOpts.Create != nil && cliOpts.Create.DefaultTemplate != "" {
			createCtx.TemplateName = cliOpts.Create.DefaultTemplate
		} else {
			createCtx.TemplateName = DefaultTemplateName
		}
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	createCtx.WorkDir = workingDir

	return nil
}

// rollbackOnErr removes staging project directory.
func rollbackOnErr(templateCtx *project_template.TemplateCtx) {
	if templateCtx.ProjectPath != "" {
		os.RemoveAll(templateCtx.ProjectPath)
	}
	templateCtx.ProjectPath = ""
}

// Run creates a project from a template.
func Run(createCtx *create_ctx.CreateCtx) error {
	if err := checkCtx(createCtx); err != nil {
		return util.InternalError("Create context check failed: %s", version.GetVersion, err)
	}

	stepsChain := []steps.Step{
		steps.ValidateProjectName{},
		steps.LoadVarsFile{},
		steps.FillTemplateVarsFromCli{},
		steps.SetPredefinedVariables{},
		steps.CreateTemporaryProjectDirectory{},
		steps.CopyProjectTemplate{},
		steps.LoadManifest{},
		steps.CollectTemplateVarsFromUser{Reader: steps.NewConsoleReader()},
		steps.RunHook{HookType: "pre"},
		steps.RenderTemplate{},
		steps.RunHook{HookType: "post"},
		steps.Cleanup{},
		steps.MoveProjectDirectory{},
		steps.PrintFollowUpMessage{Writer: os.Stdout},
	}

	templateCtx := project_template.NewTemplateContext()
	for _, step := range stepsChain {
		if err := step.Run(createCtx, &templateCtx); err != nil {
			rollbackOnErr(&templateCtx)
			return err
		}
	}

	return nil
}

// checkCtx verifies the create context is complete.
func checkCtx(createCtx *create_ctx.CreateCtx) error {
	if createCtx.ProjectName == "" {
		return fmt.Errorf("project name is missing")
	}
	if createCtx.TemplateName == "" {
		return fmt.Errorf("template name is missing")
	}

	return nil
}
