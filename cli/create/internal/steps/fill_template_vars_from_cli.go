package steps

import (
	"fmt"

	"github.com/apex/log"
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
)

// FillTemplateVarsFromCli represents a step for collecting variables
// passed using command line args.
type FillTemplateVarsFromCli struct{}

// Run collects variables passed using command line args.
func (FillTemplateVarsFromCli) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *project_template.TemplateCtx,
) error {
	for _, varDefinition := range createCtx.VarsFromCli {
		def, err := parseVarDefinition(varDefinition)
		if err != nil {
			return fmt.Errorf("%s\nUsage: --var \"var_name=value\"", err)
		}
		log.Debugf("Setting var from CLI: %s = %s", def.name, def.value)
		templateCtx.Vars[def.name] = def.value
	}

	return nil
}
