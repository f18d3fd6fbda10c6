package project_template

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/webskel/webskel/cli/util"
)

const (
	// DefaultManifestName is a file name of the template manifest.
	DefaultManifestName = "MANIFEST.yaml"
)

// UserPrompt describes a single question asked to fill a template variable.
type UserPrompt struct {
	// Prompt is the text shown to the user.
	Prompt string
	// Name is the variable the answer is stored to.
	Name string
	// Default is used when the user enters nothing.
	Default string
	// Re, if set, is a regular expression the value must match.
	Re string
}

// TemplateManifest is the decoded MANIFEST.yaml of a template.
type TemplateManifest struct {
	// Description is shown in the templates listing.
	Description string
	// Vars lists the variables the user is asked for.
	Vars []UserPrompt
	// PreHook is an executable run before rendering. It receives
	// the project directory as the first argument.
	PreHook string `mapstructure:"pre-hook"`
	// PostHook is an executable run after rendering. It receives
	// the project directory as the first argument.
	PostHook string `mapstructure:"post-hook"`
	// Include lists the files to keep after rendering, everything
	// else is removed. An empty list keeps the whole tree.
	Include []string
	// FollowUpMessage is printed once the project is in place.
	FollowUpMessage string `mapstructure:"follow-up-message"`
}

func validateManifest(manifest *TemplateManifest) error {
	for _, varInfo := range manifest.Vars {
		if varInfo.Prompt == "" {
			return fmt.Errorf("missing user prompt")
		}
		if varInfo.Name == "" {
			return fmt.Errorf("missing variable name")
		}
	}
	return nil
}

// LoadManifest reads and validates the manifest at manifestPath.
func LoadManifest(manifestPath string) (TemplateManifest, error) {
	var templateManifest TemplateManifest
	if _, err := os.Stat(manifestPath); err != nil {
		return templateManifest, fmt.Errorf("failed to get access to manifest file: %s", err)
	}

	rawManifest, err := util.ParseYAML(manifestPath)
	if err != nil {
		return templateManifest, err
	}

	if err := mapstructure.Decode(rawManifest, &templateManifest); err != nil {
		return templateManifest, fmt.Errorf("failed to decode template manifest: %s", err)
	}

	if err := validateManifest(&templateManifest); err != nil {
		return templateManifest, fmt.Errorf("invalid manifest format: %s", err)
	}

	return templateManifest, nil
}
