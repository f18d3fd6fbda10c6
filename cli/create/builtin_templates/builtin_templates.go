package builtin_templates

import (
	"embed"

	"github.com/webskel/webskel/cli/create/builtin_templates/static"
)

// TemplatesFs holds the file trees of the built-in templates.
//
//go:embed all:templates
var TemplatesFs embed.FS

// FileModes maps a built-in template name to the permissions of its files.
var FileModes = map[string]map[string]int{
	"webservice": static.WebserviceFileModes,
}

// Names lists the built-in template names.
var Names = [...]string{"webservice"}
