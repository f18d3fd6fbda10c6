package steps

import (
	"fmt"
	"io"

	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
)

// PrintFollowUpMessage represents a step for printing follow-up message.
type PrintFollowUpMessage struct {
	// Writer is used to write follow-up message.
	Writer io.Writer
}

// Run prints project template follow-up message.
func (printStep PrintFollowUpMessage) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *project_template.TemplateCtx,
) error {
	if createCtx.SilentMode || !templateCtx.IsManifestPresent {
		return nil
	}
	if templateCtx.Manifest.FollowUpMessage == "" {
		return nil
	}

	followUpText, err := templateCtx.Engine.RenderText(
		templateCtx.Manifest.FollowUpMessage, templateCtx.Vars)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(printStep.Writer, followUpText)

	return err
}
