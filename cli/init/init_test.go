package init

import (
	"os"
	"strings"
	"testing"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webskel/webskel/cli/config"
	"github.com/webskel/webskel/cli/configure"
	"github.com/webskel/webskel/cli/util"
)

// chTempDir makes a temporary directory the working directory of the test.
func chTempDir(t *testing.T) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })
}

// writeConfigStub writes a placeholder file under the config name.
func writeConfigStub(t *testing.T, fileName string) {
	t.Helper()
	require.NoError(t, os.WriteFile(fileName, []byte("text"), 0644))
}

func checkDefaultConfig(t *testing.T, configName string, defaultTemplate string) {
	t.Helper()

	rawConfigOpts, err := util.ParseYAML(configName)
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, mapstructure.Decode(rawConfigOpts, &cfg))

	require.NotNil(t, cfg.CliConfig)
	assert.Equal(t, "templates", cfg.CliConfig.Templates[0].Path)
	assert.Equal(t, defaultTemplate, cfg.CliConfig.Create.DefaultTemplate)
	assert.DirExists(t, "templates")
}

func TestInitRunNoConfig(t *testing.T) {
	chTempDir(t)

	require.NoError(t, Run(&InitCtx{}))
	require.FileExists(t, configure.ConfigName)
	checkDefaultConfig(t, configure.ConfigName, "webservice")
}

func TestInitRunDefaultTemplateOption(t *testing.T) {
	chTempDir(t)

	require.NoError(t, Run(&InitCtx{DefaultTemplate: "library"}))
	checkDefaultConfig(t, configure.ConfigName, "library")
}

func TestInitRunOverwriteConfig(t *testing.T) {
	chTempDir(t)
	writeConfigStub(t, configure.ConfigName)

	require.NoError(t, Run(&InitCtx{reader: strings.NewReader("Y\n")}))
	checkDefaultConfig(t, configure.ConfigName, "webservice")

	// A webskel.yml config is overwritten under its own name.
	require.NoError(t, os.Remove(configure.ConfigName))
	writeConfigStub(t, "webskel.yml")

	require.NoError(t, Run(&InitCtx{reader: strings.NewReader("Y\n")}))
	checkDefaultConfig(t, "webskel.yml", "webservice")

	// Both .yaml and .yml present is ambiguous.
	writeConfigStub(t, configure.ConfigName)
	require.Error(t, Run(&InitCtx{reader: strings.NewReader("\n")}))
}

func TestInitRunDontOverwriteConfig(t *testing.T) {
	chTempDir(t)
	writeConfigStub(t, configure.ConfigName)

	require.NoError(t, Run(&InitCtx{reader: strings.NewReader("N\n")}))

	buf, err := os.ReadFile(configure.ConfigName)
	require.NoError(t, err)
	require.Equal(t, "text", string(buf), "declined overwrite must keep the file")
}

func TestInitRunForceMode(t *testing.T) {
	chTempDir(t)
	writeConfigStub(t, configure.ConfigName)

	// No reader is set: force mode must not ask for confirmation.
	require.NoError(t, Run(&InitCtx{ForceMode: true, DefaultTemplate: "worker"}))
	checkDefaultConfig(t, configure.ConfigName, "worker")
}

func TestCheckExistingConfig(t *testing.T) {
	chTempDir(t)

	// No config exists yet.
	fileName, err := checkExistingConfig(&InitCtx{})
	assert.NoError(t, err)
	assert.Equal(t, configure.ConfigName, fileName)

	writeConfigStub(t, configure.ConfigName)
	fileName, err = checkExistingConfig(&InitCtx{reader: strings.NewReader("y\n")})
	assert.NoError(t, err)
	assert.Equal(t, configure.ConfigName, fileName)
	assert.NoFileExists(t, configure.ConfigName, "confirmed overwrite removes the old file")

	writeConfigStub(t, configure.ConfigName)
	fileName, err = checkExistingConfig(&InitCtx{reader: strings.NewReader("n\n")})
	assert.NoError(t, err)
	assert.Equal(t, "", fileName)
	assert.FileExists(t, configure.ConfigName)

	fileName, err = checkExistingConfig(&InitCtx{reader: strings.NewReader("n\n"),
		ForceMode: true})
	assert.NoError(t, err)
	assert.Equal(t, configure.ConfigName, fileName)
	assert.NoFileExists(t, configure.ConfigName)
}

func TestSelectDefaultTemplate(t *testing.T) {
	// Explicitly requested template wins.
	templateName, err := selectDefaultTemplate(&InitCtx{DefaultTemplate: "library"})
	require.NoError(t, err)
	assert.Equal(t, "library", templateName)

	// Without a terminal the built-in default is used.
	templateName, err = selectDefaultTemplate(&InitCtx{})
	require.NoError(t, err)
	assert.Equal(t, "webservice", templateName)
}
