// Package config used to load and store webskel configuration (webskel.yaml).
package config

// TemplateOpts contains configuration for project templates.
type TemplateOpts struct {
	// Path is a directory to search for project templates.
	Path string `mapstructure:"path" yaml:"path"`
}

// CreateOpts contains project creation defaults.
type CreateOpts struct {
	// DefaultTemplate is a template name used when no --template
	// option is specified.
	DefaultTemplate string `mapstructure:"default_template" yaml:"default_template,omitempty"`
}

// CliOpts stores webskel options.
type CliOpts struct {
	// Templates options contain directories to search
	// for project templates.
	Templates []TemplateOpts `mapstructure:"templates" yaml:"templates"`
	// Create options contain project creation defaults.
	Create *CreateOpts `mapstructure:"create" yaml:"create,omitempty"`
}

// Config stores the top level webskel.yaml mapping.
type Config struct {
	CliConfig *CliOpts `mapstructure:"webskel" yaml:"webskel"`
}
