package output

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminalWriter reports whether w is a file attached to a terminal.
// Buffers and pipes are never styled.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
