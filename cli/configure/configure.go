// Package configure performs initial CLI configuration: locating
// webskel.yaml and loading options from it.
package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"
	"github.com/webskel/webskel/cli/cmdcontext"
	"github.com/webskel/webskel/cli/config"
	"github.com/webskel/webskel/cli/util"
)

const (
	// ConfigName is the name of the webskel configuration file.
	ConfigName = "webskel.yaml"
	// cliConfigEnvName is an environment variable that contains a path
	// to the configuration file. It is overridden by the --cfg option.
	cliConfigEnvName = "WEBSKEL_CLI_CFG"
	// configHomeEnvName is the XDG base directory environment variable.
	configHomeEnvName = "XDG_CONFIG_HOME"
	// defaultTemplatesDirName is a templates directory name used when
	// the configuration does not specify one.
	defaultTemplatesDirName = "templates"
)

// GetDefaultCliOpts returns options with all defaults applied.
func GetDefaultCliOpts() *config.CliOpts {
	return &config.CliOpts{
		Templates: []config.TemplateOpts{
			{Path: defaultTemplatesDirName},
		},
		Create: &config.CreateOpts{},
	}
}

// adjustPathWithConfigLocation adjusts provided filePath with configDir.
// Absolute filePath is returned as is. Relative filePath is calculated
// relative to configDir.
func adjustPathWithConfigLocation(filePath, configDir string) (string, error) {
	if filepath.IsAbs(filePath) {
		return filePath, nil
	}
	return filepath.Abs(filepath.Join(configDir, filePath))
}

// updateCliOpts resolves all paths in opts relative to configDir and
// fills in missing sections.
func updateCliOpts(opts *config.CliOpts, configDir string) error {
	if len(opts.Templates) == 0 {
		opts.Templates = []config.TemplateOpts{
			{Path: defaultTemplatesDirName},
		}
	}

	for i := range opts.Templates {
		templatesPath, err := adjustPathWithConfigLocation(opts.Templates[i].Path, configDir)
		if err != nil {
			return err
		}
		opts.Templates[i].Path = templatesPath
	}

	if opts.Create == nil {
		opts.Create = &config.CreateOpts{}
	}

	return nil
}

// GetCliOpts returns webskel options from the config file located at
// path configurePath. If the file does not exist, default options are
// returned and the returned config path is empty.
func GetCliOpts(configurePath string) (*config.CliOpts, string, error) {
	cfg := config.Config{}

	configPath, err := util.GetYamlFileName(configurePath, true)
	if err == nil {
		if configPath, err = filepath.Abs(configPath); err != nil {
			return nil, "", fmt.Errorf("failed to resolve config file path: %s", err)
		}

		rawConfigOpts, err := util.ParseYAML(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse webskel configuration: %s", err)
		}

		if err := mapstructure.Decode(rawConfigOpts, &cfg); err != nil {
			return nil, "", fmt.Errorf("failed to parse webskel configuration: %s", err)
		}

		if cfg.CliConfig == nil {
			return nil, "",
				fmt.Errorf("failed to parse webskel configuration: missing webskel section")
		}
	} else if !os.IsNotExist(err) {
		return nil, "", fmt.Errorf("failed to access configuration file: %s", err)
	} else {
		configPath = ""
		cfg.CliConfig = GetDefaultCliOpts()
	}

	configDir := ""
	if configPath == "" {
		if configDir, err = os.Getwd(); err != nil {
			return cfg.CliConfig, configPath, err
		}
	} else {
		if configDir, err = filepath.Abs(filepath.Dir(configPath)); err != nil {
			return cfg.CliConfig, configPath, err
		}
	}

	if err = updateCliOpts(cfg.CliConfig, configDir); err != nil {
		return cfg.CliConfig, "", err
	}

	return cfg.CliConfig, configPath, nil
}

// Cli sets up logging and resolves the configuration file location.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if cmdCtx.Cli.ConfigPath == "" {
		cmdCtx.Cli.ConfigPath = os.Getenv(cliConfigEnvName)
	}

	if cmdCtx.Cli.ConfigPath != "" {
		if _, err := os.Stat(cmdCtx.Cli.ConfigPath); err != nil {
			return fmt.Errorf("invalid configuration file path: %s", err)
		}
		var err error
		if cmdCtx.Cli.ConfigPath, err = filepath.Abs(cmdCtx.Cli.ConfigPath); err != nil {
			return fmt.Errorf("failed to get config absolute path: %s", err)
		}
	} else {
		var err error
		if cmdCtx.Cli.ConfigPath, err = getConfigPath(ConfigName); err != nil {
			return fmt.Errorf("failed to get config path: %s", err)
		}
	}

	if cmdCtx.Cli.ConfigPath != "" {
		cmdCtx.Cli.ConfigDir = filepath.Dir(cmdCtx.Cli.ConfigPath)
	}

	log.Debugf("Using configuration file %q", cmdCtx.Cli.ConfigPath)

	return nil
}

// getConfigPath looks for the path to the webskel.yaml configuration file,
// looking through all directories from the current one to the root, then
// in the XDG configuration directory.
func getConfigPath(configName string) (string, error) {
	curDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %s", err)
	}

	for curDir != "/" && curDir != "." {
		configPath, err := util.GetYamlFileName(filepath.Join(curDir, configName), true)
		if err == nil {
			return configPath, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}

		parentDir := filepath.Dir(curDir)
		if parentDir == curDir {
			break
		}
		curDir = parentDir
	}

	var xdgConfigDir string
	if xdgConfigHome := os.Getenv(configHomeEnvName); xdgConfigHome != "" {
		xdgConfigDir = filepath.Join(xdgConfigHome, "webskel")
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		xdgConfigDir = filepath.Join(homeDir, ".config", "webskel")
	}

	if xdgConfigDir != "" {
		configPath, err := util.GetYamlFileName(filepath.Join(xdgConfigDir, configName), true)
		if err == nil {
			return configPath, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
	}

	return "", nil
}
