package ansi

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Escape is the byte that opens an escape span. A span runs until the next
// literal 'm', inclusive.
const Escape = '\x1b'

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// Strip removes every escape span from s. This is a two-state scanner, not a
// full ANSI parser: an unterminated span swallows the rest of the string and
// a second ESC inside a span is ignored.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inEscape := false
	for _, r := range s {
		switch {
		case r == Escape:
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// VisibleLength counts the runes of s that lie outside escape spans.
func VisibleLength(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == Escape:
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			n++
		}
	}
	return n
}

// Truncate limits s to maxWidth visible runes. Text that already fits is
// returned unchanged; otherwise maxWidth-3 visible runes are kept (escape
// spans copied verbatim and not counted) and "..." is appended.
//
// Example: Truncate("abcdefghij", 5) returns "ab..."
func Truncate(s string, maxWidth int) string {
	if VisibleLength(s) <= maxWidth {
		return s
	}

	budget := maxWidth - len(Ellipsis)
	if budget < 0 {
		budget = 0
	}

	var b strings.Builder
	b.Grow(len(s))
	visible := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == Escape:
			inEscape = true
			b.WriteRune(r)
		case inEscape:
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
		default:
			if visible >= budget {
				b.WriteString(Ellipsis)
				return b.String()
			}
			b.WriteRune(r)
			visible++
		}
	}
	return b.String()
}

// PadRight pads s with spaces until it is width visible runes wide. Escape
// spans do not count toward the width.
//
// Example: PadRight("\033[31mHi\033[0m", 5) appends three spaces
func PadRight(s string, width int) string {
	n := VisibleLength(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// DisplayWidth returns the number of terminal cells s occupies once escape
// spans are removed. Layout uses VisibleLength; this is only for detecting
// text whose cell width differs from its rune count (CJK, emoji).
func DisplayWidth(s string) int {
	return runewidth.StringWidth(Strip(s))
}
