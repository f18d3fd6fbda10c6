package steps

import (
	"testing"

	"github.com/stretchr/testify/require"
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
)

func TestSetPredefinedVariables(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := project_template.NewTemplateContext()

	createCtx.ProjectName = "app1"
	setPredefinedVariables := SetPredefinedVariables{}
	require.NoError(t, setPredefinedVariables.Run(&createCtx, &templateCtx))
	require.Equal(t, map[string]string{"name": "app1"}, templateCtx.Vars)
}

// The step runs after CLI and file variables are collected,
// so a user supplied `name` value is always discarded.
func TestSetPredefinedVariablesNameIsNotOverridable(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := project_template.NewTemplateContext()

	templateCtx.Vars["name"] = "spoofed"
	createCtx.ProjectName = "app1"
	setPredefinedVariables := SetPredefinedVariables{}
	require.NoError(t, setPredefinedVariables.Run(&createCtx, &templateCtx))
	require.Equal(t, "app1", templateCtx.Vars["name"])
}
