//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	goPackageName = "github.com/webskel/webskel/cli"

	packagePath = "./cli"
)

var (
	goExe      = "go"
	webskelExe = "webskel"

	codegenPath = filepath.Join(packagePath, "codegen", "generate_code.go")

	Aliases = map[string]any{
		"build": Build.Release,
		"unit":  Unit.Default,
	}
)

func init() {
	if exe := os.Getenv("GOEXE"); exe != "" {
		goExe = exe
	}

	if exe := os.Getenv("WEBSKELEXE"); exe != "" {
		webskelExe = exe
	} else if abs, err := filepath.Abs(webskelExe); err == nil {
		webskelExe = abs
	}

	// Modules stay on even when the checkout lives inside GOPATH.
	os.Setenv("GO111MODULE", "on")
}

// buildWebskel builds the webskel executable. buildFlags go to "go build"
// as-is, ldflagsExtra is appended to the version-stamping linker flags.
func buildWebskel(buildFlags []string, ldflagsExtra ...string) error {
	mg.Deps(GenerateGoCode)

	ldflags := append([]string{
		"-X ${PACKAGE}/version.gitTag=${GIT_TAG}",
		"-X ${PACKAGE}/version.gitCommit=${GIT_COMMIT}",
		"-X ${PACKAGE}/version.versionLabel=${VERSION_LABEL}",
	}, ldflagsExtra...)

	args := []string{"build", "-o", webskelExe}
	args = append(args, buildFlags...)
	args = append(args,
		"-ldflags", strings.Join(ldflags, " "),
		"-asmflags", "all=-trimpath=${PWD}",
		"-gcflags", "all=-trimpath=${PWD}",
		packagePath)

	if err := sh.RunWith(buildEnv(), goExe, args...); err != nil {
		return fmt.Errorf("failed to build webskel executable: %s", err)
	}

	return nil
}

type Build mg.Namespace

// Building release webskel executable without debug info.
func (Build) Release() error {
	fmt.Println("Building release webskel...")

	return buildWebskel(nil, "-s", "-w")
}

// Building debug webskel executable.
func (Build) Debug() error {
	fmt.Println("Building debug webskel...")

	return buildWebskel(nil)
}

// Building webskel executable with coverage instrumentation.
func (Build) Coverage() error {
	fmt.Println("Building release webskel with coverage...")

	if err := buildWebskel([]string{"-cover"}, "-s", "-w"); err != nil {
		return err
	}
	fmt.Println(`Set coverage data destination directory (must exist) and run webskel:
	GOCOVERDIR=./<coverage_dest_dir> webskel <opts>`)
	return nil
}

// Run golangci-lint over the tree.
func Lint() error {
	fmt.Println("Running linters...")

	mg.Deps(GenerateGoCode)

	return sh.RunV("golangci-lint", "run")
}

type Unit mg.Namespace

func runUnitTests(flags []string) error {
	mg.Deps(GenerateGoCode)

	args := []string{"test"}
	if mg.Verbose() {
		args = append(args, "-v")
	}
	args = append(args, "./...")
	args = append(args, flags...)

	return sh.RunV(goExe, args...)
}

// Run unit tests.
func (Unit) Default() error {
	fmt.Println("Running unit tests...")

	return runUnitTests(nil)
}

// Run unit tests with the race detector enabled.
func (Unit) Race() error {
	fmt.Println("Running unit tests with race detector...")

	return runUnitTests([]string{"-race"})
}

// Run unit tests with code coverage.
func (Unit) Coverage() error {
	fmt.Println("Running unit tests with code coverage...")

	coverDir := filepath.Join("coverage", "unit")
	if err := os.MkdirAll(coverDir, 0o750); err != nil {
		return err
	}
	absCoverDir, err := filepath.Abs(coverDir)
	if err != nil {
		return err
	}

	err = runUnitTests([]string{
		"-cover",
		"-args", fmt.Sprintf("-test.gocoverdir=%s", absCoverDir),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Coverage data is saved to %q\n", coverDir)
	fmt.Printf("Analyze it with: go tool covdata func -i %q\n", coverDir)

	return nil
}

// Check the tree for common misspellings.
func Codespell() error {
	fmt.Println("Running codespell...")

	return sh.RunV("codespell", ".")
}

// Run linters and unit tests together.
func Test() {
	mg.SerialDeps(Lint, Unit.Default)
}

// Remove build artifacts.
func Clean() {
	fmt.Println("Removing build artifacts...")

	os.Remove(webskelExe)
}

// GenerateGoCode generates the file mode tables for the built-in templates.
func GenerateGoCode() error {
	return sh.RunWith(buildEnv(), goExe, "run", codegenPath)
}

// buildEnv returns the variables expanded in the build flags.
func buildEnv() map[string]string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	var gitTag, gitCommit string
	if _, err := exec.LookPath("git"); err == nil {
		gitTag, _ = sh.Output("git", "describe", "--tags")
		gitCommit, _ = sh.Output("git", "rev-parse", "--short", "HEAD")
	}

	return map[string]string{
		"PACKAGE":       goPackageName,
		"GIT_TAG":       gitTag,
		"GIT_COMMIT":    gitCommit,
		"VERSION_LABEL": os.Getenv("VERSION_LABEL"),
		"PWD":           cwd,
		"CGO_ENABLED":   "0",
	}
}
