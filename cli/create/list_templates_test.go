package create

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webskel/webskel/cli/config"
)

func TestCollectTemplatesBuiltinOnly(t *testing.T) {
	templates := CollectTemplates(&config.CliOpts{})

	require.Len(t, templates, 1)
	assert.Equal(t, "webservice", templates[0].Name)
	assert.Equal(t, "built-in", templates[0].Source)
	assert.NotEmpty(t, templates[0].Description)
}

func TestCollectTemplatesSearchPaths(t *testing.T) {
	templatesDir := t.TempDir()

	templateDir := filepath.Join(templatesDir, "library")
	require.NoError(t, os.Mkdir(templateDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(templateDir, "MANIFEST.yaml"),
		[]byte("description: Python library skeleton\n"), 0644))

	require.NoError(t, os.WriteFile(filepath.Join(templatesDir, "worker.tgz"),
		[]byte("not really an archive"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(templatesDir, "daemon.tar.gz"),
		[]byte("not really an archive"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(templatesDir, "notes.txt"),
		[]byte("ignored"), 0644))

	cliOpts := &config.CliOpts{
		Templates: []config.TemplateOpts{{Path: templatesDir}},
	}
	templates := CollectTemplates(cliOpts)

	byName := map[string]TemplateInfo{}
	for _, info := range templates {
		byName[info.Name] = info
	}

	require.Len(t, templates, 4)
	assert.Equal(t, "Python library skeleton", byName["library"].Description)
	assert.Equal(t, templateDir, byName["library"].Source)
	assert.Equal(t, filepath.Join(templatesDir, "worker.tgz"), byName["worker"].Source)
	assert.Equal(t, filepath.Join(templatesDir, "daemon.tar.gz"), byName["daemon"].Source)
	assert.Equal(t, "built-in", byName["webservice"].Source)
}

func TestCollectTemplatesShadowing(t *testing.T) {
	templatesDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(templatesDir, "webservice"), 0755))

	cliOpts := &config.CliOpts{
		Templates: []config.TemplateOpts{{Path: templatesDir}},
	}
	templates := CollectTemplates(cliOpts)

	require.Len(t, templates, 1)
	assert.Equal(t, "webservice", templates[0].Name)
	assert.Equal(t, filepath.Join(templatesDir, "webservice"), templates[0].Source)
}

func TestCollectTemplatesMissingSearchPath(t *testing.T) {
	cliOpts := &config.CliOpts{
		Templates: []config.TemplateOpts{
			{Path: filepath.Join(t.TempDir(), "nonexistent")},
		},
	}
	templates := CollectTemplates(cliOpts)

	// Unreadable search paths are skipped.
	require.Len(t, templates, 1)
	assert.Equal(t, "webservice", templates[0].Name)
}

func TestTemplateNames(t *testing.T) {
	templatesDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(templatesDir, "library"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(templatesDir, "webservice"), 0755))

	cliOpts := &config.CliOpts{
		Templates: []config.TemplateOpts{{Path: templatesDir}},
	}

	require.Equal(t, []string{"library", "webservice"}, TemplateNames(cliOpts))
}

func TestListTemplates(t *testing.T) {
	var buffer bytes.Buffer
	ListTemplates(&config.CliOpts{}, &buffer)

	output := buffer.String()
	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "SOURCE")
	assert.Contains(t, output, "DESCRIPTION")
	assert.Contains(t, output, "webservice")
	assert.Contains(t, output, "built-in")
}
