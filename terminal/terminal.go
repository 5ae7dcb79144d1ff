// Package terminal measures the terminal the output is written to.
package terminal

import (
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultWidth is used when no terminal size can be determined.
const DefaultWidth = 80

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Width returns the column count of the first of files that is a terminal,
// then $COLUMNS, then DefaultWidth. The result is always positive.
func Width(files ...*os.File) int {
	for _, f := range files {
		if !IsTerminal(f) {
			continue
		}
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}

	if cols := strings.TrimSpace(os.Getenv("COLUMNS")); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}

	return DefaultWidth
}
