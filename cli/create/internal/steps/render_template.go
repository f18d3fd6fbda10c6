package steps

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
)

// templateFileSuffix marks files to be rendered by the template engine.
const templateFileSuffix = ".ws.template"

// RenderTemplate renders template files and templated file names.
type RenderTemplate struct{}

// renderEntry renders a single file of the copied template. A file with
// the template suffix is rendered and replaced by the result with the
// suffix cut off. After that the file path itself is treated as a
// template and the file is renamed if the rendered path differs.
func renderEntry(templateCtx *project_template.TemplateCtx, filePath string) error {
	if strings.HasSuffix(filePath, templateFileSuffix) {
		resultFilePath := strings.TrimSuffix(filePath, templateFileSuffix)
		if err := templateCtx.Engine.RenderFile(filePath, resultFilePath,
			templateCtx.Vars); err != nil {
			return err
		}
		if err := os.Remove(filePath); err != nil {
			return fmt.Errorf("failed to remove %s: %s", filePath, err)
		}
		filePath = resultFilePath
	}

	newFileName, err := templateCtx.Engine.RenderText(filePath, templateCtx.Vars)
	if err != nil {
		return fmt.Errorf("failed to render file name %s: %s", filePath, err)
	}
	if newFileName != filePath {
		if err = os.Rename(filePath, newFileName); err != nil {
			return fmt.Errorf("failed to rename %s to %s: %s", filePath, newFileName, err)
		}
	}

	return nil
}

// Run renders all template files in the project directory.
func (RenderTemplate) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *project_template.TemplateCtx,
) error {
	err := filepath.WalkDir(templateCtx.ProjectPath,
		func(filePath string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			return renderEntry(templateCtx, filePath)
		})
	if err != nil {
		return fmt.Errorf("template instantiation error: %s", err)
	}

	return nil
}
