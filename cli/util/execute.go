package util

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

var (
	spinnerPicture    = spinner.CharSets[9]
	spinnerUpdateTime = 100 * time.Millisecond
)

// RunCommand runs the command in workingDir. If showOutput is set, the
// command writes directly to the terminal. Otherwise the output is
// captured to a temporary file and shown only if the command fails,
// with a spinner displayed while it is running.
func RunCommand(cmd *exec.Cmd, workingDir string, showOutput bool) error {
	cmd.Dir = workingDir

	var capture *os.File
	if showOutput {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		tmpFile, err := os.CreateTemp("", "webskel_out")
		if err != nil {
			log.Warnf("Failed to create tmp file to store command output: %s", err)
		} else {
			capture = tmpFile
			cmd.Stdout = capture
			cmd.Stderr = capture
			defer os.Remove(capture.Name())
			defer capture.Close()
		}
	}

	var spin *spinner.Spinner
	if !showOutput && isatty.IsTerminal(os.Stdout.Fd()) {
		spin = spinner.New(spinnerPicture, spinnerUpdateTime)
		spin.Start()
	}

	err := cmd.Run()

	if spin != nil {
		spin.Stop()
	}

	if err != nil {
		if capture != nil {
			if printErr := printFromStart(capture); printErr != nil {
				log.Warnf("Failed to show command output: %s", printErr)
			}
		}

		return fmt.Errorf("failed to run \n%s\n\n%s", cmd.String(), err)
	}

	return nil
}

// RunHook runs the hook script. The project directory is passed to the
// hook as the first argument and is used as the working directory.
func RunHook(hookPath, projectDir string, showOutput bool) error {
	hookName := filepath.Base(hookPath)

	if isExec, err := IsExecOwner(hookPath); err != nil {
		return fmt.Errorf("failed to check hook file `%s`: %s", hookName, err)
	} else if !isExec {
		return fmt.Errorf("hook `%s` should be executable", hookName)
	}

	hookCmd := exec.Command(hookPath, projectDir)
	if err := RunCommand(hookCmd, projectDir, showOutput); err != nil {
		return fmt.Errorf("failed to run hook `%s`: %s", hookName, err)
	}

	return nil
}

// IsExecOwner checks if the file has the owner executable bit set.
func IsExecOwner(path string) (bool, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	return fileInfo.Mode().Perm()&0o100 != 0, nil
}

// printFromStart prints file content from the beginning.
func printFromStart(file *os.File) error {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek file begin: %s", err)
	}
	if _, err := io.Copy(os.Stdout, file); err != nil {
		return fmt.Errorf("failed to print file content: %s", err)
	}

	return nil
}
