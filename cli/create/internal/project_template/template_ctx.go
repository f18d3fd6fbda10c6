package project_template

import "github.com/webskel/webskel/cli/templates"

// TemplateCtx is the state shared by the project creation steps.
type TemplateCtx struct {
	// ProjectPath is the staging directory the template is
	// instantiated in.
	ProjectPath string
	// TargetProjectPath is where the finished project is moved to.
	TargetProjectPath string
	// Manifest holds the decoded template manifest.
	Manifest TemplateManifest
	// IsManifestPresent reports whether the template had a manifest
	// at all.
	IsManifestPresent bool
	// Vars are the values available to the template engine.
	Vars map[string]string
	// Engine renders template files and file names.
	Engine templates.TemplateEngine
}

// NewTemplateContext returns a context ready for the first step.
func NewTemplateContext() TemplateCtx {
	var ctx TemplateCtx
	ctx.Vars = make(map[string]string)
	ctx.Engine = templates.NewDefaultEngine()
	return ctx
}
