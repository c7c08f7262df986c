package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChrisDavison/ptt/internal/config"
	perrors "github.com/ChrisDavison/ptt/internal/errors"
	"github.com/ChrisDavison/ptt/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the ptt configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. Values match the configuration schema
  4. dateFormat is a usable strftime pattern

The config path is resolved using precedence:
  --config flag > PTT_CONFIG env > $XDG_CONFIG_HOME/ptt/config.yaml

Examples:
  ptt config vet
  ptt config vet --config ./ptt.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(c, cfg)
		},
	}
}

func runConfigVet(c *cobra.Command, cfg *config.GlobalConfig) error {
	path, err := configFilePath(cfg)
	if err != nil {
		return perrors.Wrap(perrors.ErrNotFound, "could not determine config file path")
	}

	output.Debug("validating config", "path", path)

	exists, err := config.FileExists(path)
	if err != nil {
		return &perrors.IOError{Op: "stat", Path: path, Err: err}
	}
	if !exists {
		return perrors.NewNotFoundError(
			"configuration file not found",
			path,
			"Run 'ptt config init' to create default configuration",
		)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateFile(path); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			output.Error("configuration is invalid", "path", path)
			for _, v := range verrs {
				output.Error(v.Message, "field", v.Field)
			}
			return &perrors.ExitError{Code: perrors.ExitValidationError, Err: err, Printed: true}
		}
		return &perrors.IOError{Op: "read", Path: path, Err: err}
	}

	if effective, err := config.NewLoader().LoadWithDefaults(path); err == nil {
		output.Debug("effective configuration",
			"templateDir", effective.TemplateDir,
			"dateFormat", effective.DateFormat,
		)
	}

	fmt.Fprintf(c.OutOrStdout(), "Configuration is valid: %s\n", path)
	return nil
}
