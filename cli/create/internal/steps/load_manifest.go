package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
)

// LoadManifest reads the template manifest into the shared context.
type LoadManifest struct{}

// Run loads the manifest if the template has one, a missing manifest
// is fine. The manifest file itself is not a part of the project and
// is removed.
func (LoadManifest) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *project_template.TemplateCtx,
) error {
	manifestPath := filepath.Join(templateCtx.ProjectPath,
		project_template.DefaultManifestName)

	if _, err := os.Stat(manifestPath); err != nil {
		if os.IsNotExist(err) {
			log.Debug("There is no manifest in template.")
			templateCtx.IsManifestPresent = false
			return nil
		}
		return fmt.Errorf("failed to get access to manifest file: %s", err)
	}

	manifest, err := project_template.LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest file: %s", err)
	}

	templateCtx.Manifest = manifest
	templateCtx.IsManifestPresent = true

	if err = os.Remove(manifestPath); err != nil {
		return fmt.Errorf("failed to remove manifest %s: %s", manifestPath, err)
	}

	return nil
}
