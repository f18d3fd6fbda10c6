package steps

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
)

// Cleanup represents project directory cleanup step.
type Cleanup struct{}

// renderIncludeSet renders include list entries and resolves them
// to full paths within the project directory.
func renderIncludeSet(templateCtx *project_template.TemplateCtx) (map[string]bool, error) {
	includeSet := make(map[string]bool, len(templateCtx.Manifest.Include))
	for _, fileName := range templateCtx.Manifest.Include {
		// File name may contain template vars.
		rendered, err := templateCtx.Engine.RenderText(fileName, templateCtx.Vars)
		if err != nil {
			return nil, fmt.Errorf("file name rendering error: %s", err)
		}
		includeSet[filepath.Join(templateCtx.ProjectPath, rendered)] = true
	}

	return includeSet, nil
}

// isIncluded reports whether filePath or any of its parents up to
// rootPath is present in includeSet. Including a directory keeps its
// whole subtree.
func isIncluded(includeSet map[string]bool, rootPath, filePath string) bool {
	for curPath := filePath; len(curPath) >= len(rootPath); {
		if includeSet[curPath] {
			return true
		}
		parentPath := filepath.Dir(curPath)
		if parentPath == curPath {
			break
		}
		curPath = parentPath
	}

	return false
}

// Run removes all files/directories, except files in the include list.
func (Cleanup) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *project_template.TemplateCtx,
) error {
	if !templateCtx.IsManifestPresent {
		log.Debug("Template has no manifest, nothing to clean up.")
		return nil
	}
	if len(templateCtx.Manifest.Include) == 0 {
		return nil
	}

	includeSet, err := renderIncludeSet(templateCtx)
	if err != nil {
		return err
	}

	// Directories are collected and removed after the walk.
	var dirsToRemove []string
	err = filepath.WalkDir(templateCtx.ProjectPath,
		func(filePath string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if isIncluded(includeSet, templateCtx.ProjectPath, filePath) {
				return nil
			}

			if entry.IsDir() {
				if filePath != templateCtx.ProjectPath {
					dirsToRemove = append(dirsToRemove, filePath)
				}
				return nil
			}
			if entry.Type().IsRegular() {
				log.Debugf("Removing %s", filePath)
				if err := os.Remove(filePath); err != nil {
					log.Errorf("failed to remove %s: %s", filePath, err)
				}
			}

			return nil
		})
	if err != nil {
		return fmt.Errorf("cleanup failed: %s", err)
	}

	// Children go before parents, so emptied directories are removed too.
	for i := len(dirsToRemove) - 1; i >= 0; i-- {
		dir := dirsToRemove[i]
		log.Debugf("Removing %s", dir)
		if err = os.Remove(dir); err != nil {
			log.Debugf("Directory %s is not empty.", dir)
		}
	}

	return nil
}
