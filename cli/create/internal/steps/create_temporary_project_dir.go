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

// CreateTemporaryProjectDirectory represents create temporary project
// directory step. The project is first instantiated in a temporary
// directory, so a failure at any further step does not leave a partial
// project behind.
type CreateTemporaryProjectDirectory struct{}

// Run checks the target path and creates a temporary project directory.
func (CreateTemporaryProjectDirectory) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *project_template.TemplateCtx,
) error {
	var projectDirectory string
	var err error

	if createCtx.ProjectName == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	if createCtx.DestinationDir != "" {
		projectDirectory = filepath.Join(createCtx.DestinationDir, createCtx.ProjectName)
	} else {
		projectDirectory = filepath.Join(createCtx.WorkDir, createCtx.ProjectName)
	}

	if _, err = os.Stat(projectDirectory); err == nil {
		if !createCtx.ForceMode {
			return &util.ExistsError{Path: projectDirectory}
		}
	}

	projectDirectory, err = filepath.Abs(projectDirectory)
	if err != nil {
		return err
	}

	log.Infof("Creating project in %q", projectDirectory)
	templateCtx.TargetProjectPath = projectDirectory

	templateCtx.ProjectPath, err = os.MkdirTemp("", createCtx.ProjectName+"*")
	if err != nil {
		return fmt.Errorf("failed to create temporary project directory: %s", err)
	}

	return nil
}
