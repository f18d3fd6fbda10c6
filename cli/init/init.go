// Package init generates webskel configuration file in the current directory.
package init

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/webskel/webskel/cli/config"
	"github.com/webskel/webskel/cli/configure"
	"github.com/webskel/webskel/cli/create"
	"github.com/webskel/webskel/cli/util"
)

const defaultDirPermissions = os.FileMode(0750)

// InitCtx contains information for webskel config creation.
type InitCtx struct {
	// ForceMode, if set, webskel config is re-written without a question.
	ForceMode bool
	// DefaultTemplate is a template name to write to the config.
	// If empty, the template is selected interactively.
	DefaultTemplate string
	// reader provides answers for interactive prompts.
	reader io.Reader
}

// FillCtx prepares the context for Run.
func FillCtx(initCtx *InitCtx) {
	initCtx.reader = os.Stdin
}

// checkExistingConfig checks webskel config for existence and asks for
// confirmation to overwrite. Returns file name if init process can continue,
// and an empty string otherwise.
func checkExistingConfig(initCtx *InitCtx) (string, error) {
	configName, err := util.GetYamlFileName(configure.ConfigName, false)
	if configName == "" {
		return "", err
	}

	_, err = os.Stat(configName)
	if os.IsNotExist(err) {
		return configName, nil
	}
	if err != nil {
		return "", err
	}

	if !initCtx.ForceMode {
		confirmed, err := util.AskConfirm(initCtx.reader,
			fmt.Sprintf("%s already exists. Overwrite?", configName))
		if err != nil {
			return "", err
		}
		if !confirmed {
			log.Info("Init is cancelled by user.")
			return "", nil
		}
	}

	if err = os.Remove(configName); err != nil {
		return "", err
	}

	return configName, nil
}

// createDirectories creates every directory from dirList.
func createDirectories(dirList []string) error {
	for _, dirName := range dirList {
		if dirName == "" {
			continue
		}
		if err := util.CreateDirectory(dirName, defaultDirPermissions); err != nil {
			return err
		}
		log.Debugf("Created directory %q.", dirName)
	}

	return nil
}

// chooseDefaultTemplate shows a menu in terminal to choose the default
// project template.
func chooseDefaultTemplate(templateNames []string) (string, error) {
	templateSelect := promptui.Select{
		Label:        "Select default template",
		Items:        templateNames,
		HideSelected: true,
	}
	_, templateName, err := templateSelect.Run()

	return templateName, err
}

// selectDefaultTemplate returns the default template name for the generated
// config. The template is selected interactively if there is something to
// select from and the terminal is interactive.
func selectDefaultTemplate(initCtx *InitCtx) (string, error) {
	if initCtx.DefaultTemplate != "" {
		return initCtx.DefaultTemplate, nil
	}

	templateNames := create.TemplateNames(configure.GetDefaultCliOpts())
	if len(templateNames) > 1 && isatty.IsTerminal(os.Stdin.Fd()) {
		return chooseDefaultTemplate(templateNames)
	}

	return create.DefaultTemplateName, nil
}

// Run creates webskel config in the current directory.
func Run(initCtx *InitCtx) error {
	if initCtx.reader == nil {
		initCtx.reader = os.Stdin
	}

	configName, err := checkExistingConfig(initCtx)
	if configName == "" {
		return err
	}

	defaultTemplate, err := selectDefaultTemplate(initCtx)
	if err != nil {
		return err
	}

	cfg := config.Config{
		CliConfig: configure.GetDefaultCliOpts(),
	}
	cfg.CliConfig.Create.DefaultTemplate = defaultTemplate

	if err = util.WriteYaml(configName, cfg); err != nil {
		return err
	}

	directoriesToCreate := []string{}
	for _, templatesPathOpts := range cfg.CliConfig.Templates {
		directoriesToCreate = append(directoriesToCreate, templatesPathOpts.Path)
	}
	if err = createDirectories(directoriesToCreate); err != nil {
		return err
	}

	log.Infof("Configuration is written to %q.", configName)

	return nil
}
