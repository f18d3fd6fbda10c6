// Package steps implements the project creation pipeline. Every step
// works on a shared template context and may abort the chain with an error.
package steps

import (
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
)

// Step is an interface for a single step of the create pipeline.
type Step interface {
	Run(createCtx *create_ctx.CreateCtx, templateCtx *project_template.TemplateCtx) error
}
