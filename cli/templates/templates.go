// Package templates provides a template engine used for project
// template instantiation.
package templates

import (
	"github.com/webskel/webskel/cli/templates/internal/engines"
)

// TemplateEngine renders project template files and strings.
type TemplateEngine interface {
	// RenderFile renders the template from srcPath and saves the
	// result as dstPath.
	RenderFile(srcPath, dstPath string, data interface{}) error

	// RenderText renders the template text and returns the result.
	RenderText(in string, data interface{}) (string, error)
}

// NewDefaultEngine returns the engine the create pipeline renders with.
func NewDefaultEngine() TemplateEngine {
	return engines.GoTextEngine{}
}
