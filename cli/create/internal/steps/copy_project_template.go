package steps

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/apex/log"
	"github.com/otiai10/copy"
	"github.com/webskel/webskel/cli/create/builtin_templates"
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
	"github.com/webskel/webskel/cli/util"
)

const defaultPermissions = os.FileMode(0o755)

// defaultFileMode is used for a built-in template file if it is missing
// in the generated file modes table.
const defaultFileMode = 0o644

// copyBuiltinTemplate copies built-in template files from the embedded
// filesystem. Embedding does not preserve file modes, so they are taken
// from the table generated at build time.
func copyBuiltinTemplate(templateName, dstPath string) error {
	srcRoot := path.Join("templates", templateName)
	fileModes := builtin_templates.FileModes[templateName]

	return fs.WalkDir(builtin_templates.TemplatesFs, srcRoot,
		func(srcPath string, dirEntry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			relPath, err := filepath.Rel(srcRoot, srcPath)
			if err != nil {
				return err
			}
			targetPath := filepath.Join(dstPath, relPath)

			if dirEntry.IsDir() {
				return util.CreateDirectory(targetPath, defaultPermissions)
			}

			fileMode, found := fileModes[relPath]
			if !found {
				fileMode = defaultFileMode
			}
			return util.FsCopyFileChangePerms(builtin_templates.TemplatesFs,
				srcPath, targetPath, fileMode)
		})
}

// extractTemplate extracts archivePath archive to dstPath.
func extractTemplate(archivePath, dstPath string) error {
	if err := util.ExtractTarGz(archivePath, dstPath); err != nil {
		return fmt.Errorf("template archive extraction failed: %s", err)
	}

	if err := os.Chmod(dstPath, defaultPermissions); err != nil {
		return fmt.Errorf("failed to change permissions of %s: %s", dstPath, err)
	}
	return nil
}

// CopyProjectTemplate represents copy project template step.
type CopyProjectTemplate struct{}

// Run searches for the template and copies/extracts it to the project
// directory. Templates from the configured search paths shadow the
// built-in ones.
func (CopyProjectTemplate) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *project_template.TemplateCtx,
) error {
	templateName := createCtx.TemplateName

	for _, templatesLocation := range createCtx.TemplateSearchPaths {
		templatePath := filepath.Join(templatesLocation, templateName)
		if util.IsDir(templatePath) {
			log.Infof("Using template from %s", templatePath)
			if err := copy.Copy(templatePath, templateCtx.ProjectPath); err != nil {
				return fmt.Errorf("template copying failed: %s", err)
			}
			if err := os.Chmod(templateCtx.ProjectPath, defaultPermissions); err != nil {
				return fmt.Errorf("failed to change permissions of %s: %s",
					templateCtx.ProjectPath, err)
			}
			return nil
		}

		archivesToCheck := [2]string{
			filepath.Join(templatesLocation, templateName+".tgz"),
			filepath.Join(templatesLocation, templateName+".tar.gz"),
		}
		for _, archivePath := range archivesToCheck {
			if util.IsRegularFile(archivePath) {
				log.Infof("Using template from %s", archivePath)
				return extractTemplate(archivePath, templateCtx.ProjectPath)
			}
		}
	}

	for _, builtinName := range builtin_templates.Names {
		if builtinName == templateName {
			log.Infof("Using built-in template %q", templateName)
			return copyBuiltinTemplate(templateName, templateCtx.ProjectPath)
		}
	}

	return fmt.Errorf("template %q is not found", templateName)
}
