package steps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
	"github.com/webskel/webskel/cli/util"
)

func TestCreateTmpProjectDirBasic(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := project_template.NewTemplateContext()

	workDir := t.TempDir()
	createCtx.ProjectName = "app1"
	createCtx.WorkDir = workDir
	createProjectDir := CreateTemporaryProjectDirectory{}
	require.NoError(t, createProjectDir.Run(&createCtx, &templateCtx))
	defer os.RemoveAll(templateCtx.ProjectPath)

	require.Equal(t, filepath.Join(workDir, createCtx.ProjectName),
		templateCtx.TargetProjectPath)
	require.DirExists(t, templateCtx.ProjectPath)
}

func TestCreateTmpProjectDirMissingProjectName(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := project_template.NewTemplateContext()

	createCtx.WorkDir = t.TempDir()
	createProjectDir := CreateTemporaryProjectDirectory{}
	require.EqualError(t, createProjectDir.Run(&createCtx, &templateCtx),
		"project name cannot be empty")
}

func TestCreateTmpProjectDirDestinationSet(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := project_template.NewTemplateContext()

	dstDir := t.TempDir()
	createCtx.ProjectName = "app1"
	createCtx.WorkDir = t.TempDir()
	createCtx.DestinationDir = dstDir
	createProjectDir := CreateTemporaryProjectDirectory{}
	require.NoError(t, createProjectDir.Run(&createCtx, &templateCtx))
	defer os.RemoveAll(templateCtx.ProjectPath)

	require.Equal(t, filepath.Join(dstDir, "app1"), templateCtx.TargetProjectPath)
}

func TestCreateTmpProjectDirTargetExists(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := project_template.NewTemplateContext()

	workDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workDir, "app1"), 0755))

	createCtx.ProjectName = "app1"
	createCtx.WorkDir = workDir
	createProjectDir := CreateTemporaryProjectDirectory{}
	err := createProjectDir.Run(&createCtx, &templateCtx)
	require.Error(t, err)

	var existsErr *util.ExistsError
	require.True(t, errors.As(err, &existsErr))
	require.Equal(t, filepath.Join(workDir, "app1"), existsErr.Path)

	// Existing target is not an error in force mode.
	createCtx.ForceMode = true
	require.NoError(t, createProjectDir.Run(&createCtx, &templateCtx))
	defer os.RemoveAll(templateCtx.ProjectPath)
	require.DirExists(t, templateCtx.ProjectPath)
}
