package steps

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/otiai10/copy"
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
	"github.com/webskel/webskel/cli/util"
)

// MoveProjectDirectory represents temporary project directory move step.
type MoveProjectDirectory struct{}

// Run moves temporary project directory to destination. The target is
// re-checked before the move, it could have appeared while the template
// was instantiated.
func (MoveProjectDirectory) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *project_template.TemplateCtx,
) error {
	if templateCtx.TargetProjectPath == "" {
		return nil
	}

	if _, err := os.Stat(templateCtx.TargetProjectPath); err == nil {
		if !createCtx.ForceMode {
			return &util.ExistsError{Path: templateCtx.TargetProjectPath}
		}
		if err = os.RemoveAll(templateCtx.TargetProjectPath); err != nil {
			return fmt.Errorf("failed to remove %s: %s", templateCtx.TargetProjectPath, err)
		}
	}

	if err := copy.Copy(templateCtx.ProjectPath, templateCtx.TargetProjectPath); err != nil {
		return err
	}

	if err := os.RemoveAll(templateCtx.ProjectPath); err != nil {
		log.Warnf("Failed to remove temporary directory: %s", err)
	}

	return nil
}
