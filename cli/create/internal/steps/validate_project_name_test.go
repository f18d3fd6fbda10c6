package steps

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
	"github.com/webskel/webskel/cli/util"
)

func TestValidateProjectNameAccepted(t *testing.T) {
	acceptedNames := []string{
		"app1",
		"my-service",
		"my_service",
		"WebService",
		"0",
		"a",
		strings.Repeat("a", 255),
	}

	validateName := ValidateProjectName{}
	for _, name := range acceptedNames {
		var createCtx create_ctx.CreateCtx
		templateCtx := project_template.NewTemplateContext()

		createCtx.ProjectName = name
		assert.NoError(t, validateName.Run(&createCtx, &templateCtx), name)
	}
}

func TestValidateProjectNameRejected(t *testing.T) {
	rejectedNames := []string{
		"",
		"my service",
		"my.service",
		"my/service",
		"..",
		"сервис",
		"app\n",
		strings.Repeat("a", 256),
	}

	validateName := ValidateProjectName{}
	for _, name := range rejectedNames {
		var createCtx create_ctx.CreateCtx
		templateCtx := project_template.NewTemplateContext()

		createCtx.ProjectName = name
		err := validateName.Run(&createCtx, &templateCtx)
		require.Error(t, err, name)

		var nameErr *util.NameError
		require.True(t, errors.As(err, &nameErr), name)
		assert.Equal(t, name, nameErr.Name)
	}
}

func TestValidateProjectNameReason(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := project_template.NewTemplateContext()

	validateName := ValidateProjectName{}

	createCtx.ProjectName = ""
	require.EqualError(t, validateName.Run(&createCtx, &templateCtx),
		`invalid project name "": name cannot be empty`)

	createCtx.ProjectName = strings.Repeat("a", 300)
	require.ErrorContains(t, validateName.Run(&createCtx, &templateCtx),
		"name is too long")

	createCtx.ProjectName = "my service"
	require.EqualError(t, validateName.Run(&createCtx, &templateCtx),
		`invalid project name "my service": `+
			"name may contain only latin letters, digits, underscore and hyphen")
}
