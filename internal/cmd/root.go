// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChrisDavison/ptt/internal/config"
	"github.com/ChrisDavison/ptt/internal/output"
	"github.com/ChrisDavison/ptt/internal/version"
)

// rootFlags holds the global flags.
type rootFlags struct {
	config      string
	templateDir string
	verbose     bool
	timestamps  bool
}

// NewRootCmd creates the root command for ptt.
func NewRootCmd() *cobra.Command {
	cfg := &config.GlobalConfig{}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "ptt",
		Short: "Plaintext template tool",
		Long: `ptt creates files from plaintext templates.

Templates live in ~/.ptt_templates as <name>.txt or DATE-<name>.txt.
Every {{name}} placeholder in a template is asked for once and replaced
everywhere it appears. Dated templates prefix the output file with
today's date.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: PTT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.templateDir, "template-dir", "", "Template directory (env: PTT_TEMPLATE_DIR, default: ~/.ptt_templates)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewUseCmd(cfg))
	rootCmd.AddCommand(NewListCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))

	return rootCmd
}

// initializeGlobals loads configuration, resolves values, and sets up logging.
func initializeGlobals(c *cobra.Command, cfg *config.GlobalConfig, flags *rootFlags) error {
	configPath, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	// A broken config file must not block commands that don't need it.
	loaded, loadErr := config.NewLoader().Load(configPath.Value)

	resolved, err := config.ResolveAll(config.ResolveAllOptions{
		TemplateDirFlag: flags.templateDir,
		Config:          loaded,
	})
	if err != nil {
		return fmt.Errorf("resolving configuration: %w", err)
	}

	cfg.Config = loaded
	cfg.ConfigPath = configPath.Value
	cfg.Resolved = resolved
	cfg.Verbose = flags.verbose

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded != nil && loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring config file", "path", configPath.Value, "error", loadErr)
	}

	if flags.verbose {
		output.Debug("initializing CLI",
			"version", version.GetInfo().Version,
			"config", cfg.ConfigPath,
		)
		config.LogResolvedValues(append([]config.ResolvedValue{configPath}, resolved.Values()...))
	}

	return nil
}
