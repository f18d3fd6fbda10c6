package steps

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/otiai10/copy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
)

// hookTemplateCtx returns a template context with pre/post hooks set up.
func hookTemplateCtx(projectPath string) project_template.TemplateCtx {
	templateCtx := project_template.NewTemplateContext()
	templateCtx.ProjectPath = projectPath
	templateCtx.IsManifestPresent = true
	templateCtx.Manifest.PreHook = "pre-gen.sh"
	templateCtx.Manifest.PostHook = "post-gen.sh"

	return templateCtx
}

func TestRunHooks(t *testing.T) {
	workDir := t.TempDir()
	require.NoError(t, copy.Copy("testdata/hooks", workDir))

	var createCtx create_ctx.CreateCtx
	templateCtx := hookTemplateCtx(workDir)

	for _, hookType := range []string{"pre", "post"} {
		assert.NoError(t, RunHook{HookType: hookType}.Run(&createCtx, &templateCtx))
	}

	// Hook scripts get the project directory as the first argument.
	assert.FileExists(t, filepath.Join(workDir, "pre-script-invoked"))
	assert.FileExists(t, filepath.Join(workDir, "post-script-invoked"))

	// Hook executables are not a part of the project.
	assert.NoFileExists(t, filepath.Join(workDir, templateCtx.Manifest.PreHook))
	assert.NoFileExists(t, filepath.Join(workDir, templateCtx.Manifest.PostHook))
}

func TestRunHooksMissingScript(t *testing.T) {
	workDir := t.TempDir()

	var createCtx create_ctx.CreateCtx
	templateCtx := hookTemplateCtx(workDir)

	for _, hookType := range []string{"pre", "post"} {
		scriptPath := filepath.Join(workDir, hookType+"-gen.sh")
		require.EqualError(t, RunHook{HookType: hookType}.Run(&createCtx, &templateCtx),
			fmt.Sprintf("error access to %[1]s: stat %[1]s: no such file or directory",
				scriptPath))
	}

	// Hooks not named in the manifest are simply skipped.
	templateCtx.Manifest.PreHook = ""
	templateCtx.Manifest.PostHook = ""
	for _, hookType := range []string{"pre", "post"} {
		require.NoError(t, RunHook{HookType: hookType}.Run(&createCtx, &templateCtx))
	}
}

func TestRunHooksInvalidType(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := hookTemplateCtx(t.TempDir())

	require.EqualError(t, RunHook{HookType: "mid"}.Run(&createCtx, &templateCtx),
		"invalid hook type mid")
}

func TestRunHooksNoManifest(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := project_template.NewTemplateContext()

	require.NoError(t, RunHook{HookType: "pre"}.Run(&createCtx, &templateCtx))
}
