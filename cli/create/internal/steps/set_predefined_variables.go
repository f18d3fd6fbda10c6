package steps

import (
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
)

// SetPredefinedVariables represents a step for setting pre-defined variables.
type SetPredefinedVariables struct{}

// Run sets predefined variables values. It runs after the variables
// from CLI and vars file are collected, so `name` always stays equal
// to the project name.
func (SetPredefinedVariables) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *project_template.TemplateCtx,
) error {
	templateCtx.Vars["name"] = createCtx.ProjectName
	return nil
}
