// Package config provides configuration loading and management.
package config

import "github.com/ChrisDavison/ptt/internal/templates"

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// Config represents the ptt configuration file.
// Loaded from $XDG_CONFIG_HOME/ptt/config.yaml and validated against the
// embedded CUE schema by `ptt config vet`.
type Config struct {
	// TemplateDir is the directory holding <name>.txt and DATE-<name>.txt files.
	// Env: PTT_TEMPLATE_DIR, Default: ~/.ptt_templates
	TemplateDir string `mapstructure:"templateDir" yaml:"templateDir,omitempty" json:"templateDir,omitempty"`

	// DateFormat is the strftime pattern for dated output names.
	// Env: PTT_DATE_FORMAT, Default: %Y-%m-%d
	DateFormat string `mapstructure:"dateFormat" yaml:"dateFormat,omitempty" json:"dateFormat,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty" json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `ptt config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		TemplateDir: DefaultTemplateDir,
		DateFormat:  templates.DefaultDateFormat,
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.TemplateDir == "" {
		out.TemplateDir = DefaultTemplateDir
	}
	if out.DateFormat == "" {
		out.DateFormat = templates.DefaultDateFormat
	}
	return &out
}
