package steps

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
)

// varDef is a single variable definition.
type varDef struct {
	name  string
	value string
}

// parseVarDefinition parses variable definition in name=value format.
func parseVarDefinition(line string) (varDef, error) {
	def := varDef{}
	name, value, found := strings.Cut(strings.TrimSpace(line), "=")
	if !found || name == "" || value == "" {
		return def, fmt.Errorf("wrong variable definition format: %s", line)
	}
	def.name = name
	def.value = value
	return def, nil
}

// LoadVarsFile represents variables file load step.
type LoadVarsFile struct{}

// Run collects variables from the definitions file. Blank lines and
// lines starting with # are skipped.
func (LoadVarsFile) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *project_template.TemplateCtx,
) error {
	if createCtx.VarsFile == "" { // Skip if no file specified.
		return nil
	}

	varsFilePath := createCtx.VarsFile
	if !filepath.IsAbs(varsFilePath) {
		varsFilePath = filepath.Join(createCtx.WorkDir, varsFilePath)
	}

	varsFile, err := os.Open(varsFilePath)
	if err != nil {
		return fmt.Errorf("vars file loading error: %s", err)
	}
	defer varsFile.Close()

	scanner := bufio.NewScanner(varsFile)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		varDef, err := parseVarDefinition(line)
		if err != nil {
			return fmt.Errorf("failed to load vars from %s: %s", varsFilePath, err)
		}
		log.Debugf("Setting var from vars file: %s = %s", varDef.name, varDef.value)
		templateCtx.Vars[varDef.name] = varDef.value
	}

	if err = scanner.Err(); err != nil {
		return err
	}

	return nil
}
