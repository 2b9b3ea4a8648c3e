package adapter

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// TerminalSize returns the size of w when it is a terminal.
func TerminalSize(w io.Writer) (width, height int, ok bool) {
	file, isFile := w.(*os.File)
	if !isFile {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}
