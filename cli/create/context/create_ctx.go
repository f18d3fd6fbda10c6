// Package create_ctx provides a context for project creation.
package create_ctx

// CreateCtx contains information for creating a project from a template.
type CreateCtx struct {
	// ProjectName is a name of the project to create.
	ProjectName string
	// TemplateName is a name of the template to use.
	TemplateName string
	// TemplateSearchPaths is a slice of paths to search for the template.
	TemplateSearchPaths []string
	// WorkDir is a directory where the command was launched.
	WorkDir string
	// DestinationDir is a directory to create the project in.
	// WorkDir is used if not set.
	DestinationDir string
	// VarsFromCli contains variable definitions from command line
	// in name=value format.
	VarsFromCli []string
	// VarsFile is a path to a file with variable definitions.
	VarsFile string
	// ForceMode, if set, enables removing of the existing project directory.
	ForceMode bool
	// SilentMode, if set, disables user interaction. Default values
	// are used instead.
	SilentMode bool
	// Verbose, if set, enables hook commands output.
	Verbose bool
}
