package main

import (
	"io/fs"
	"path/filepath"

	"github.com/apex/log"
	"github.com/dave/jennifer/jen"
)

// Built-in template directories to scan, mapped to the name prefix
// of the generated variable.
var builtinTemplates = map[string]string{
	"webservice": "Webservice",
}

// collectFileModes walks a template directory and records the mode of
// every regular file, keyed by the path relative to root.
func collectFileModes(root string) (map[string]int, error) {
	fileModes := make(map[string]int)

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		fileModes[rel] = int(info.Mode())

		return nil
	})
	if err != nil {
		return nil, err
	}

	return fileModes, nil
}

// generateFileModesFile writes a static Go file declaring
//
//	var <prefix>FileModes = map[string]int{"<file>": <mode>}
//
// for every file of a built-in template. go:embed drops file modes,
// so they are recorded at generation time.
func generateFileModesFile(templateDir string, outFile string, varNamePrefix string) error {
	fileModes, err := collectFileModes(templateDir)
	if err != nil {
		return err
	}

	goFile := jen.NewFile("static")
	goFile.Comment("This file is generated! DO NOT EDIT\n")

	goFile.Var().Id(varNamePrefix + "FileModes").Op("=").
		Map(jen.String()).Int().Values(jen.DictFunc(func(d jen.Dict) {
			for name, mode := range fileModes {
				d[jen.Lit(name)] = jen.Lit(mode).Commentf("/* %#o */", mode)
			}
		}))

	return goFile.Save(outFile)
}

func main() {
	for name, prefix := range builtinTemplates {
		err := generateFileModesFile(
			filepath.Join("cli/create/builtin_templates/templates", name),
			filepath.Join("cli/create/builtin_templates/static",
				name+"_template_filemodes_gen.go"),
			prefix,
		)
		if err != nil {
			log.Fatalf("error while generating file modes for %q: %s", name, err)
		}
	}
}
