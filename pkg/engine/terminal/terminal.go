// Package terminal reports the size of the terminal a writer is attached to.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsTerminal reports whether w writes to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Size returns the width and height of the terminal behind w.
// Falls back to defaults if w is not a terminal or the size cannot be determined.
func Size(w io.Writer) (width, height int) {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Width returns the terminal width behind w.
// Falls back to DefaultWidth if the width cannot be determined.
func Width(w io.Writer) int {
	width, _ := Size(w)
	return width
}

// Indent returns the left margin that centers content of the given width
func Indent(w io.Writer, contentWidth int) int {
	margin := (Width(w) - contentWidth) / 2
	if margin < 0 {
		return 0
	}
	return margin
}
