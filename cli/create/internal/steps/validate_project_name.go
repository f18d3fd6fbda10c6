package steps

import (
	"regexp"

	"github.com/apex/log"
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
	"github.com/webskel/webskel/cli/util"
)

// maxProjectNameLength keeps the name usable as a single path component
// on common filesystems.
const maxProjectNameLength = 255

// projectNamePattern matches the whole name, not a substring of it.
var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateProjectName represents project name validation step.
type ValidateProjectName struct{}

// Run checks that the project name can be used as a directory name
// and inside generated files.
func (ValidateProjectName) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *project_template.TemplateCtx,
) error {
	name := createCtx.ProjectName

	if name == "" {
		return &util.NameError{Name: name, Reason: "name cannot be empty"}
	}
	if len(name) > maxProjectNameLength {
		return &util.NameError{Name: name, Reason: "name is too long"}
	}
	if !projectNamePattern.MatchString(name) {
		return &util.NameError{
			Name:   name,
			Reason: "name may contain only latin letters, digits, underscore and hyphen",
		}
	}

	log.Debugf("Project name %q is accepted", name)

	return nil
}
