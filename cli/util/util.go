package util

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// VersionFunc is a type of function that returns
// string with current webskel version.
type VersionFunc func(bool, bool) string

// InternalError shows error information, version of webskel and call stack.
func InternalError(format string, f VersionFunc, err ...interface{}) error {
	errorFmt := `whoops! It looks like something is wrong with this version of webskel.
Error: %s
Version: %s
Stacktrace:
%s`
	version := f(false, false)

	return fmt.Errorf(errorFmt, fmt.Sprintf(format, err...), version, debug.Stack())
}

// ParseYAML parses the yaml file at the specified path into a raw mapping.
func ParseYAML(path string) (map[string]interface{}, error) {
	fileContent, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %s", path, err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(fileContent, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %s", err)
	}

	return raw, nil
}

// AskConfirm prompts the user with question until a yes/no answer is read.
func AskConfirm(ioReader io.Reader, question string) (bool, error) {
	reader := bufio.NewReader(ioReader)
	for {
		fmt.Printf("%s [y/n]: ", question)

		answer, err := reader.ReadString('\n')
		if err != nil && answer == "" {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if err != nil {
			return false, err
		}
	}
}

// IsDir checks if filePath is an existing directory.
func IsDir(filePath string) bool {
	stat, err := os.Stat(filePath)
	return err == nil && stat.IsDir()
}

// IsRegularFile checks if filePath is an existing regular file.
func IsRegularFile(filePath string) bool {
	stat, err := os.Stat(filePath)
	return err == nil && stat.Mode().IsRegular()
}

// FsCopyFileChangePerms copies a file from fsys to dst with the given perms.
// Perms of the source are ignored, embedded files lose the executable bit.
func FsCopyFileChangePerms(fsys fs.FS, src, dst string, perms int) error {
	data, err := fs.ReadFile(fsys, src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, data, fs.FileMode(perms))
}

// CreateDirectory creates a directory unless it already exists.
// An existing non-directory is an error.
func CreateDirectory(dirName string, fileMode os.FileMode) error {
	stat, err := os.Stat(dirName)
	if os.IsNotExist(err) {
		return os.MkdirAll(dirName, fileMode)
	}
	if err != nil {
		return err
	}

	if !stat.IsDir() {
		return fmt.Errorf("%q already exists and is not a directory", dirName)
	}

	return nil
}

// WriteYaml writes YAML encoding of object o to fileName.
func WriteYaml(fileName string, o interface{}) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Warnf("Failed to close %q: %s", file.Name(), err)
		}
	}()

	encoder := yaml.NewEncoder(file)
	defer encoder.Close()

	return encoder.Encode(o)
}

// GetYamlFileName searches for a file with .yaml or .yml extension based on
// the file name provided. If the mustExist flag is set and no yaml files are
// found, os.ErrNotExist is returned, the passed fileName is returned otherwise.
func GetYamlFileName(fileName string, mustExist bool) (string, error) {
	var baseName string
	switch ext := filepath.Ext(fileName); ext {
	case ".yaml", ".yml", ".", "":
		baseName = strings.TrimSuffix(fileName, ext)
	default:
		return "", fmt.Errorf("%q has no .yaml/.yml extension", fileName)
	}

	matches, err := filepath.Glob(baseName + ".y*ml")
	if err != nil {
		return "", err
	}

	foundYamlFiles := []string{}
	for _, match := range matches {
		switch filepath.Ext(match) {
		case ".yaml", ".yml":
			foundYamlFiles = append(foundYamlFiles, match)
		}
	}

	switch len(foundYamlFiles) {
	case 0:
		if mustExist {
			return "", os.ErrNotExist
		}
		return fileName, nil
	case 1:
		return foundYamlFiles[0], nil
	}

	return "", fmt.Errorf("more than one YAML config found: %s",
		strings.Join(foundYamlFiles, ", "))
}

// HandleCmdErr terminates the command on error. Usage errors
// additionally print the command help.
func HandleCmdErr(cmd *cobra.Command, err error) {
	if err != nil {
		var argError *ArgError
		if errors.As(err, &argError) {
			log.Error(argError.Error())
			cmd.Usage()
			os.Exit(1)
		}
		log.Fatalf(err.Error())
	}
}
