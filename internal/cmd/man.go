package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/ChrisDavison/ptt/internal/version"
)

// newManCmd creates the hidden man command, which writes a man page for root
// to stdout. Redirect it to $HOME/.local/share/man/man1/ptt.1 to install.
func newManCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man page",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			header := &doc.GenManHeader{
				Title:   "PTT",
				Section: "1",
				Source:  "ptt " + version.Version,
				Manual:  "ptt manual",
			}
			return doc.GenMan(root, header, c.OutOrStdout())
		},
	}
}
