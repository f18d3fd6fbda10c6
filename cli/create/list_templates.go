package create

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adam-hanna/arrayOperations"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mitchellh/mapstructure"
	"github.com/webskel/webskel/cli/config"
	"github.com/webskel/webskel/cli/create/builtin_templates"
	"github.com/webskel/webskel/cli/create/internal/project_template"
	"github.com/webskel/webskel/cli/util"
	yaml "gopkg.in/yaml.v2"
)

// builtinSourceName marks templates shipped with the binary.
const builtinSourceName = "built-in"

var printBuiltin = color.New(color.FgCyan).SprintFunc()

// TemplateInfo describes a single available project template.
type TemplateInfo struct {
	// Name is a template name to pass to the create command.
	Name string
	// Source is a filesystem location of the template.
	Source string
	// Description is a template description from its manifest.
	Description string
}

// readManifestDescription returns the description from the template manifest.
// Missing or broken manifest is not an error, such template just has
// no description.
func readManifestDescription(fsys fs.FS, manifestPath string) string {
	content, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return ""
	}

	var rawManifest map[string]interface{}
	if err = yaml.Unmarshal(content, &rawManifest); err != nil {
		return ""
	}

	var manifest project_template.TemplateManifest
	if err = mapstructure.Decode(rawManifest, &manifest); err != nil {
		return ""
	}

	return manifest.Description
}

// cutArchiveSuffix cuts the template archive extension from fileName.
func cutArchiveSuffix(fileName string) (string, bool) {
	for _, suffix := range []string{".tgz", ".tar.gz"} {
		if templateName, found := strings.CutSuffix(fileName, suffix); found &&
			templateName != "" {
			return templateName, true
		}
	}
	return "", false
}

// templateSearchPaths returns template search paths from the configuration.
func templateSearchPaths(cliOpts *config.CliOpts) []string {
	paths := make([]string, 0, len(cliOpts.Templates))
	for _, templateOpts := range cliOpts.Templates {
		paths = append(paths, templateOpts.Path)
	}
	return paths
}

// CollectTemplates returns available project templates: templates from the
// configured search paths and the built-in ones. A search path template
// shadows a built-in template with the same name.
func CollectTemplates(cliOpts *config.CliOpts) []TemplateInfo {
	templates := []TemplateInfo{}
	seen := map[string]bool{}

	appendTemplate := func(info TemplateInfo) {
		if !seen[info.Name] {
			seen[info.Name] = true
			templates = append(templates, info)
		}
	}

	for _, templatesLocation := range templateSearchPaths(cliOpts) {
		entries, err := os.ReadDir(templatesLocation)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			entryName := entry.Name()
			if entry.IsDir() {
				templateDir := filepath.Join(templatesLocation, entryName)
				appendTemplate(TemplateInfo{
					Name:   entryName,
					Source: templateDir,
					Description: readManifestDescription(os.DirFS(templateDir),
						project_template.DefaultManifestName),
				})
			} else if templateName, found := cutArchiveSuffix(entryName); found {
				appendTemplate(TemplateInfo{
					Name:   templateName,
					Source: filepath.Join(templatesLocation, entryName),
				})
			}
		}
	}

	for _, builtinName := range builtin_templates.Names {
		appendTemplate(TemplateInfo{
			Name:   builtinName,
			Source: builtinSourceName,
			Description: readManifestDescription(builtin_templates.TemplatesFs,
				path.Join("templates", builtinName, project_template.DefaultManifestName)),
		})
	}

	return templates
}

// TemplateNames returns distinct names of all available templates.
// It is used for shell completion.
func TemplateNames(cliOpts *config.CliOpts) []string {
	templates := CollectTemplates(cliOpts)
	names := make([]string, 0, len(templates))
	for _, info := range templates {
		names = append(names, info.Name)
	}

	names = arrayOperations.DifferenceString(names)
	sort.Strings(names)

	return names
}

// ListTemplates prints a table of available project templates.
func ListTemplates(cliOpts *config.CliOpts, writer io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(writer)
	t.AppendHeader(table.Row{"NAME", "SOURCE", "DESCRIPTION"})
	for _, info := range CollectTemplates(cliOpts) {
		source := info.Source
		if source == builtinSourceName {
			source = util.Bold(printBuiltin(source))
		}
		t.AppendRow(table.Row{info.Name, source, info.Description})
	}
	t.Render()
}
