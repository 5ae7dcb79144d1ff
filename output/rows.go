// Package output turns collected system facts and a logo into the final
// terminal text: the side-by-side layout, the plain stdout listing and the
// JSON document.
package output

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gofetch/ansi"
	"gofetch/config"
	"gofetch/sysinfo"
)

// FieldSource supplies field values by name. Missing fields read as "".
type FieldSource interface {
	Get(name string) string
}

// DisplayRow is one line of the info column. An empty Label marks a special
// row: the title, its underline, or a pre-rendered color swatch.
type DisplayRow struct {
	Label string
	Value string
	Show  bool
}

// Visible reports whether the row is rendered. Empty and Unknown values are
// never rendered, whatever Show says.
func (r DisplayRow) Visible() bool {
	return r.Show && sysinfo.Known(r.Value)
}

type rowSpec struct {
	label  string
	field  string
	always bool
}

// rowCatalog is the fixed order of labeled rows after the title and
// underline.
var rowCatalog = []rowSpec{
	{"OS", "os", true},
	{"Host", "host", true},
	{"Kernel", "kernel", true},
	{"Uptime", "uptime", true},
	{"Packages", "packages", true},
	{"Shell", "shell", true},
	{"Resolution", "resolution", false},
	{"DE", "de", false},
	{"WM", "wm", false},
	{"WM Theme", "wm_theme", false},
	{"Theme", "theme", false},
	{"Icons", "icons", false},
	{"Terminal", "terminal", true},
	{"Terminal Font", "terminal_font", false},
	{"CPU", "cpu", true},
	{"GPU", "gpu", false},
	{"Memory", "memory", true},
}

// BuildRows produces the info column in its fixed order: title, underline,
// then the labeled rows of rowCatalog.
func BuildRows(fields FieldSource, s config.Settings) []DisplayRow {
	title := fields.Get("title")

	rows := make([]DisplayRow, 0, len(rowCatalog)+2)
	rows = append(rows,
		DisplayRow{Value: title, Show: true},
		DisplayRow{Value: GenerateUnderline(title, s), Show: s.Info.UnderlineEnabled},
	)

	for _, spec := range rowCatalog {
		v := fields.Get(spec.field)
		rows = append(rows, DisplayRow{
			Label: spec.label,
			Value: v,
			Show:  spec.always || sysinfo.Known(v),
		})
	}
	return rows
}

// GenerateUnderline repeats the underline string once per rune of title.
// It returns "" when underlining is disabled.
func GenerateUnderline(title string, s config.Settings) string {
	if !s.Info.UnderlineEnabled {
		return ""
	}
	return strings.Repeat(s.Info.UnderlineChar, utf8.RuneCountInString(title))
}

// FormatRow styles a row and truncates it to maxWidth visible runes.
//
// Labeled rows render as "<label><sep> <value>". Label-less rows are passed
// through when they already carry escapes, styled as an underline when they
// consist only of '-', '=' and '_', and styled as the title otherwise.
func FormatRow(row DisplayRow, s config.Settings, maxWidth int) string {
	if !sysinfo.Known(row.Value) {
		return ""
	}

	if row.Label == "" {
		switch {
		case strings.ContainsRune(row.Value, ansi.Escape):
			return row.Value
		case isUnderline(row.Value):
			return ansi.Truncate(ansi.Wrap(row.Value, ansi.ColorCyan), maxWidth)
		default:
			return ansi.Truncate(ansi.Style(row.Value, ansi.ColorGreen, s.Info.Bold), maxWidth)
		}
	}

	line := fmt.Sprintf("%s%s %s",
		ansi.Style(row.Label, ansi.ColorCyan, s.Info.Bold),
		ansi.Wrap(s.Info.Separator, ansi.ColorWhite),
		ansi.Wrap(row.Value, ansi.ColorWhite),
	)
	return ansi.Truncate(line, maxWidth)
}

func isUnderline(v string) bool {
	return strings.Trim(v, "-=_") == ""
}
