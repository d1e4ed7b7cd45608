package adapter

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether the writer is an interactive terminal. Output
// redirected to a file or pipe is not.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
