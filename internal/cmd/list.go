package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ChrisDavison/ptt/internal/cmdutil"
	"github.com/ChrisDavison/ptt/internal/config"
	"github.com/ChrisDavison/ptt/internal/output"
	"github.com/ChrisDavison/ptt/internal/templates"
)

// NewListCmd creates the list command.
func NewListCmd(cfg *config.GlobalConfig) *cobra.Command {
	var flags cmdutil.OutputFlags

	c := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available templates",
		Long: `List the templates in the template directory.

Dated templates are shown as "(DATE) <name>".

Examples:
  ptt list
  ptt list -o json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runList(c, cfg, &flags)
		},
	}

	flags.AddTo(c)

	return c
}

func runList(c *cobra.Command, cfg *config.GlobalConfig, flags *cmdutil.OutputFlags) error {
	format, err := flags.Parse()
	if err != nil {
		return err
	}

	fsys := afero.NewOsFs()
	dir := cfg.TemplateDir()
	if err := cmdutil.RequireTemplateDir(fsys, dir); err != nil {
		return err
	}

	entries, err := templates.List(fsys, dir)
	if err != nil {
		return err
	}
	output.Debug("listed templates", "dir", dir, "count", len(entries))

	out := c.OutOrStdout()
	return output.WriteTemplates(out, cmdutil.TemplateRows(entries), format, output.IsTerminalWriter(out))
}
