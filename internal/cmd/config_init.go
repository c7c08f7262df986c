package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ChrisDavison/ptt/internal/config"
	perrors "github.com/ChrisDavison/ptt/internal/errors"
)

// configHeader is written above the generated YAML.
const configHeader = `# ptt configuration
#
# templateDir  directory holding <name>.txt and DATE-<name>.txt templates
# dateFormat   strftime pattern for dated output names
# log          logging settings (timestamps: true|false)

`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *config.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Create a ptt configuration file with default values.

The file is created at $XDG_CONFIG_HOME/ptt/config.yaml unless --config
or PTT_CONFIG points elsewhere.

Examples:
  # Initialize configuration
  ptt config init

  # Overwrite existing configuration
  ptt config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, cfg, force)
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return c
}

func runConfigInit(c *cobra.Command, cfg *config.GlobalConfig, force bool) error {
	path, err := configFilePath(cfg)
	if err != nil {
		return perrors.Wrap(perrors.ErrNotFound, "could not determine config file path")
	}

	exists, err := config.FileExists(path)
	if err != nil {
		return &perrors.IOError{Op: "stat", Path: path, Err: err}
	}
	if exists && !force {
		return &perrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    perrors.ErrValidation,
		}
	}

	// Secure permissions: 0700 for the directory, 0600 for the file.
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return perrors.NewPermissionError(
				"could not create config directory",
				map[string]string{"path": dir},
				"Check the ownership of the parent directory, or pass --config.",
			)
		}
		return &perrors.IOError{Op: "mkdir", Path: dir, Err: err}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return &perrors.IOError{Op: "write", Path: path, Err: err}
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, 0o600); err != nil {
		return &perrors.IOError{Op: "chmod", Path: path, Err: err}
	}

	out := c.OutOrStdout()
	fmt.Fprintf(out, "Config file created: %s\n", path)
	fmt.Fprintln(out, "Validate with: ptt config vet")
	return nil
}
