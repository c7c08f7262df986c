package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ChrisDavison/ptt/internal/cmdutil"
	"github.com/ChrisDavison/ptt/internal/config"
	"github.com/ChrisDavison/ptt/internal/output"
)

// NewUseCmd creates the use command.
func NewUseCmd(cfg *config.GlobalConfig) *cobra.Command {
	var flags cmdutil.TemplateFlags

	c := &cobra.Command{
		Use:   "use <template> [filename...]",
		Short: "Create a file from a template",
		Long: `Create a file from a template.

The template is looked up as DATE-<template>.txt first, then <template>.txt.
Each distinct {{placeholder}} is prompted for in order of first appearance,
unless preset with --set.

Output file name:
  dated template, no filename     <date>-<template>.txt
  dated template, filename        <date>-<filename>.txt
  undated template, filename      <filename>.txt
Several filename words are joined with "-".

Examples:
  # Today's log entry: 2024-01-01-log.txt
  ptt use log

  # Meeting notes with a compact date: 20240101-standup-notes.txt
  ptt use meeting standup notes -f %Y%m%d

  # Non-interactive
  ptt use letter to-bob --set who=Bob --set me=Alice`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runUse(c, args, cfg, &flags)
		},
	}

	flags.AddTo(c)

	return c
}

func runUse(c *cobra.Command, args []string, cfg *config.GlobalConfig, flags *cmdutil.TemplateFlags) error {
	out := c.OutOrStdout()

	path, err := cmdutil.InvokeTemplate(c.Context(), cmdutil.InvokeOpts{
		Name:      args[0],
		Fragments: args[1:],
		Flags:     flags,
		Config:    cfg,
		Fs:        afero.NewOsFs(),
		In:        c.InOrStdin(),
		Out:       out,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, output.FormatCreated(path, output.IsTerminalWriter(out)))
	return nil
}
