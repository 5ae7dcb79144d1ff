// Package ansi provides the color vocabulary and escape-aware text helpers
// used to lay out colored terminal output.
package ansi

import "strings"

// ANSI escape sequences for terminal output formatting
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
)

// Color is one of the basic terminal foreground colors. ColorNone is the
// zero value and is never mapped to an escape sequence.
type Color int

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBlack
)

var colorCodes = map[Color]string{
	ColorRed:     "31",
	ColorGreen:   "32",
	ColorYellow:  "33",
	ColorBlue:    "34",
	ColorMagenta: "35",
	ColorCyan:    "36",
	ColorWhite:   "37",
}

var colorNames = map[string]Color{
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"purple":  ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"black":   ColorBlack,
}

// ParseColor maps a color name (case-insensitive) to a Color. Unknown names
// yield ColorNone and false.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Code returns the SGR parameter for c, or "" when c has no mapping.
func (c Color) Code() string {
	return colorCodes[c]
}

// Wrap surrounds text with the escape pair for c. Colors without a mapping
// return text unmodified.
func Wrap(text string, c Color) string {
	return Style(text, c, false)
}

// Style is Wrap with an optional bold attribute folded into the same
// sequence, e.g. "\033[1;36m".
func Style(text string, c Color, bold bool) string {
	code := c.Code()
	if code == "" {
		if bold {
			return Bold + text + Reset
		}
		return text
	}
	if bold {
		code = "1;" + code
	}
	return "\033[" + code + "m" + text + Reset
}
