package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
	"github.com/webskel/webskel/cli/util"
)

// RunHook runs the pre or post generation hook of a template.
type RunHook struct {
	HookType string
}

// Run executes template hooks. The hook executable is removed afterwards,
// it is not a part of the project.
func (hook RunHook) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *project_template.TemplateCtx,
) error {
	if !templateCtx.IsManifestPresent {
		log.Debug("Template has no manifest, skipping the hooks.")
		return nil
	}

	var hookPath string
	switch hook.HookType {
	case "pre":
		hookPath = templateCtx.Manifest.PreHook
	case "post":
		hookPath = templateCtx.Manifest.PostHook
	default:
		return fmt.Errorf("invalid hook type %s", hook.HookType)
	}

	if hookPath == "" {
		return nil
	}

	executablePath := filepath.Join(templateCtx.ProjectPath, hookPath)
	if _, err := os.Stat(executablePath); err != nil {
		return fmt.Errorf("error access to %s: %s", executablePath, err)
	}

	log.Infof("Running %s-hook %s", hook.HookType, hookPath)
	if err := util.RunHook(executablePath, templateCtx.ProjectPath,
		createCtx.Verbose); err != nil {
		return err
	}

	// The hook script is not a part of the generated project.
	if err := os.Remove(executablePath); err != nil {
		log.Errorf("Failed to remove hook script %s: %s", executablePath, err)
	}

	return nil
}
