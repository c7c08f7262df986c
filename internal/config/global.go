package config

import "github.com/ChrisDavison/ptt/internal/templates"

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file, nil when loading failed.
	Config *Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Resolved holds the template directory and date format with their sources.
	Resolved *ResolvedConfig

	Verbose bool
}

// TemplateDir returns the resolved template directory, or the expanded
// default when resolution has not run.
func (g *GlobalConfig) TemplateDir() string {
	if g != nil && g.Resolved != nil {
		return g.Resolved.TemplateDir.Value
	}
	dir, err := ExpandPath(DefaultTemplateDir)
	if err != nil {
		return DefaultTemplateDir
	}
	return dir
}

// DateFormat returns the resolved date format, or the default when
// resolution has not run.
func (g *GlobalConfig) DateFormat() string {
	return g.DateFormatFor("").Value
}

// DateFormatFor layers a command's --format value over the date format
// resolved at startup. An empty flagValue leaves the startup value in place.
func (g *GlobalConfig) DateFormatFor(flagValue string) ResolvedValue {
	rv := ResolvedValue{Key: "dateFormat", Value: templates.DefaultDateFormat, Source: SourceDefault}
	if g != nil && g.Resolved != nil && g.Resolved.DateFormat.Value != "" {
		rv = g.Resolved.DateFormat
	}
	if flagValue == "" {
		return rv
	}

	shadowed := make(map[ConfigSource]string, len(rv.Shadowed)+1)
	for src, v := range rv.Shadowed {
		shadowed[src] = v
	}
	shadowed[rv.Source] = rv.Value
	return ResolvedValue{Key: rv.Key, Value: flagValue, Source: SourceFlag, Shadowed: shadowed}
}
