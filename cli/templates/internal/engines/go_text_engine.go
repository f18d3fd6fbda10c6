package engines

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// GoTextEngine is a template engine implementation based on text/template.
type GoTextEngine struct{}

// RenderFile renders the template file srcPath and saves the result as
// dstPath. File mode of the source file is preserved.
func (GoTextEngine) RenderFile(srcPath, dstPath string, data interface{}) error {
	info, err := os.Stat(srcPath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %s", srcPath, err)
	}
	srcMode := info.Mode()

	templateText, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %s", srcPath, err)
	}

	// Funcs must be installed before parsing, template functions are
	// resolved at parse time.
	tmpl, err := template.New(filepath.Base(srcPath)).
		Funcs(commonTemplateFuncs).
		Option("missingkey=error"). // Treat missing variable as error.
		Parse(string(templateText))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %s", srcPath, err)
	}

	outFile, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %s", dstPath, err)
	}
	defer func() {
		outFile.Close()
		os.Chmod(outFile.Name(), srcMode)
	}()

	if err := tmpl.Execute(outFile, data); err != nil {
		return fmt.Errorf("template execution failed: %s", err)
	}
	return nil
}

// RenderText renders in text using go text/template engine.
func (GoTextEngine) RenderText(in string, data interface{}) (string, error) {
	tmpl, err := template.New("text").
		Funcs(commonTemplateFuncs).
		Option("missingkey=error").
		Parse(in)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %s", err)
	}

	var out bytes.Buffer
	if err = tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("template execution failed: %s", err)
	}

	return out.String(), nil
}
