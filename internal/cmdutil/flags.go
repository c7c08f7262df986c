// Package cmdutil provides shared command utilities for ptt subcommands.
// It centralizes flag group management, template invocation, and output
// helpers.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	perrors "github.com/ChrisDavison/ptt/internal/errors"
	"github.com/ChrisDavison/ptt/internal/output"
)

// TemplateFlags holds flags for commands that instantiate a template.
type TemplateFlags struct {
	DateFormat string
	Set        []string
	Force      bool
}

// AddTo registers the template flags on the given cobra command.
func (f *TemplateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.DateFormat, "format", "f", "",
		"Date format for dated templates, strftime style (env: PTT_DATE_FORMAT, default: %Y-%m-%d)")
	cmd.Flags().StringArrayVar(&f.Set, "set", nil,
		"Preset a placeholder value as key=value (can be repeated)")
	cmd.Flags().BoolVar(&f.Force, "force", true,
		"Overwrite the output file if it already exists")
}

// OutputFlags holds the output format flag for listing commands.
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", string(output.FormatText),
		"Output format: "+strings.Join(output.ValidFormats(), ", "))
}

// Parse validates the output flag.
func (f *OutputFlags) Parse() (output.Format, error) {
	format, ok := output.ParseFormat(f.Format)
	if !ok {
		return "", perrors.NewValidationError(
			fmt.Sprintf("unsupported output format %q", f.Format),
			"",
			"Valid formats: "+strings.Join(output.ValidFormats(), ", "),
		)
	}
	return format, nil
}
