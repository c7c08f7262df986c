package config

import (
	"os"

	"github.com/ChrisDavison/ptt/internal/output"
	"github.com/ChrisDavison/ptt/internal/templates"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its source and the
// lower-precedence values it shadowed.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// resolveString applies flag > env > config > default precedence.
func resolveString(key, flagValue, envName, configValue, defaultValue string) ResolvedValue {
	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, os.Getenv(envName)},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if rv.Source == "" {
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		rv.Shadowed[c.source] = c.value
	}
	return rv
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) PTT_CONFIG env, (3) $XDG_CONFIG_HOME/ptt/config.yaml.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	return resolveString("config", flagValue, EnvConfig, "", paths.ConfigFile), nil
}

// ResolveAllOptions holds raw flag values and the loaded config file.
type ResolveAllOptions struct {
	TemplateDirFlag string

	// Config is the loaded config file; nil when none was loaded.
	Config *Config
}

// ResolvedConfig holds every resolved configuration value.
type ResolvedConfig struct {
	// TemplateDir is the template directory with ~ expanded.
	TemplateDir ResolvedValue
	DateFormat  ResolvedValue
}

// Values returns the resolved values in a stable order for logging.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.TemplateDir, r.DateFormat}
}

// ResolveAll resolves the template directory and date format.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	templateDir := resolveString("templateDir", opts.TemplateDirFlag, EnvTemplateDir, cfg.TemplateDir, DefaultTemplateDir)
	expanded, err := ExpandPath(templateDir.Value)
	if err != nil {
		return nil, err
	}
	templateDir.Value = expanded

	return &ResolvedConfig{
		TemplateDir: templateDir,
		DateFormat:  resolveDateFormat(cfg),
	}, nil
}

// resolveDateFormat resolves the date format from env, config and default.
// The --format flag belongs to the use command and is layered on later by
// GlobalConfig.DateFormatFor. cfg may be nil.
func resolveDateFormat(cfg *Config) ResolvedValue {
	var configValue string
	if cfg != nil {
		configValue = cfg.DateFormat
	}
	return resolveString("dateFormat", "", EnvDateFormat, configValue, templates.DefaultDateFormat)
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
