package steps

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	create_ctx "github.com/webskel/webskel/cli/create/context"
	"github.com/webskel/webskel/cli/create/internal/project_template"
)

// Reader provides lines of user input.
type Reader interface {
	readLine() (string, error)
}

// consoleReader reads user input from stdin.
type consoleReader struct {
	in *bufio.Reader
}

// readLine returns the next input line without the trailing newline.
func (reader consoleReader) readLine() (string, error) {
	input, err := reader.in.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error getting user input: %s", err)
	}
	return strings.TrimSuffix(input, "\n"), nil
}

// NewConsoleReader creates a reader for interactive prompts.
func NewConsoleReader() consoleReader {
	return consoleReader{in: bufio.NewReader(os.Stdin)}
}

// CollectTemplateVarsFromUser represents a step for collecting missing
// variable values from a user.
type CollectTemplateVarsFromUser struct {
	// Reader supplies the values typed by the user.
	Reader Reader
}

// validateVar reports whether value matches the variable's regexp.
// An empty pattern accepts everything.
func validateVar(varInfo project_template.UserPrompt, value string) (bool, error) {
	if varInfo.Re == "" {
		return true, nil
	}
	matched, err := regexp.MatchString(varInfo.Re, value)
	if err != nil {
		return false, fmt.Errorf("failed to validate user input: %s", err)
	}
	return matched, nil
}

// requestVar obtains a value for a single template variable. In silent
// mode the default value is taken and a variable without a default is
// an error. Otherwise the user is prompted until the input is valid.
func (collectStep CollectTemplateVarsFromUser) requestVar(silent bool,
	varInfo project_template.UserPrompt,
) (string, error) {
	if silent {
		if varInfo.Default == "" {
			return "", fmt.Errorf("%s variable value is not set", varInfo.Name)
		}
		matched, err := validateVar(varInfo, varInfo.Default)
		if err != nil {
			return "", err
		}
		if !matched {
			return "", fmt.Errorf("invalid format of %s variable", varInfo.Name)
		}
		return varInfo.Default, nil
	}

	for {
		if varInfo.Default == "" {
			fmt.Printf("%s: ", varInfo.Prompt)
		} else {
			fmt.Printf("%s (default: %s): ", varInfo.Prompt, varInfo.Default)
		}

		input, err := collectStep.Reader.readLine()
		if err != nil {
			return "", fmt.Errorf("error reading user input: %s", err)
		}
		if input == "" {
			if varInfo.Default == "" {
				fmt.Println("Please enter a value.")
				continue
			}
			input = varInfo.Default
		}

		matched, err := validateVar(varInfo, input)
		if err != nil {
			return "", err
		}
		if matched {
			return input, nil
		}
		fmt.Println("Invalid format. Try again.")
	}
}

// Run makes sure every manifest variable has a valid value, asking the
// user for the missing ones. In silent mode default values are used and
// a variable without a default value is an error.
func (collectStep CollectTemplateVarsFromUser) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *project_template.TemplateCtx,
) error {
	if !templateCtx.IsManifestPresent {
		return nil
	}

	for _, varInfo := range templateCtx.Manifest.Vars {
		// A variable set from CLI or vars file still gets validated.
		if existingValue, found := templateCtx.Vars[varInfo.Name]; found {
			matched, err := validateVar(varInfo, existingValue)
			if err != nil {
				return err
			}
			if matched {
				continue
			}
			if createCtx.SilentMode {
				return fmt.Errorf("invalid format of %s variable", varInfo.Name)
			}
			fmt.Printf("Invalid format of %s variable.\n", varInfo.Name)
		}

		value, err := collectStep.requestVar(createCtx.SilentMode, varInfo)
		if err != nil {
			return err
		}
		templateCtx.Vars[varInfo.Name] = value
	}

	return nil
}
