package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory name used under XDG base directories.
	AppDirName = "ptt"

	// DefaultTemplateDir is where templates live unless configured otherwise.
	DefaultTemplateDir = "~/.ptt_templates"

	// EnvConfig overrides the config file path.
	EnvConfig = "PTT_CONFIG"

	// EnvTemplateDir overrides the template directory.
	EnvTemplateDir = "PTT_TEMPLATE_DIR"

	// EnvDateFormat overrides the date format.
	EnvDateFormat = "PTT_DATE_FORMAT"
)

// Paths contains standard filesystem paths for ptt.
type Paths struct {
	// ConfigDir is the ptt config directory ($XDG_CONFIG_HOME/ptt).
	ConfigDir string

	// ConfigFile is the path to the config file ($XDG_CONFIG_HOME/ptt/config.yaml).
	ConfigFile string

	// TemplateDir is the expanded default template directory.
	TemplateDir string
}

// DefaultPaths returns the default paths for ptt. XDG variables are re-read
// on every call so HOME and XDG_CONFIG_HOME changes take effect.
func DefaultPaths() (*Paths, error) {
	xdg.Reload()

	templateDir, err := ExpandPath(DefaultTemplateDir)
	if err != nil {
		return nil, err
	}

	configDir := filepath.Join(xdg.ConfigHome, AppDirName)

	return &Paths{
		ConfigDir:   configDir,
		ConfigFile:  filepath.Join(configDir, "config.yaml"),
		TemplateDir: templateDir,
	}, nil
}

// GetConfigFile returns the config file path.
// If PTT_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}

// FileExists reports whether path exists as a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
