package output

import (
	"strings"

	"github.com/rs/zerolog/log"

	"gofetch/ansi"
	"gofetch/ascii"
	"gofetch/config"
)

// Render produces the complete text for one run: JSON, the plain stdout
// listing, the logo alone, or the composed side-by-side layout, depending on
// s. The result ends with a newline.
func Render(store *ascii.Store, fields FieldSource, s config.Settings, terminalWidth int) (string, error) {
	if s.JSON {
		data, err := JSON(fields)
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	}

	rows := BuildRows(fields, s)

	if s.Display.Stdout {
		return joinLines(Stdout(rows)), nil
	}

	if s.Display.Backend != config.BackendASCII {
		log.Debug().
			Str("backend", string(s.Display.Backend)).
			Msg("Image backend not supported, drawing ascii logo")
	}

	logo := SelectLogo(store, fields, s)

	if s.LogoOnly {
		return joinLines(Compose(logo, nil, "", noSwatch(s), 0)), nil
	}

	lines := Compose(logo, rows, fields.Get("colors"), s, terminalWidth)
	warnWideText(logo, rows)

	return joinLines(lines), nil
}

// SelectLogo resolves the logo for the configured distro override, or the
// detected OS, and applies any palette override from the settings.
func SelectLogo(store *ascii.Store, fields FieldSource, s config.Settings) ascii.Logo {
	osName := s.Display.AsciiDistro
	if osName == "" {
		osName = fields.Get("os")
	}
	return store.Resolve(osName).WithColors(LogoPalette(s.Display.AsciiColors))
}

// LogoPalette parses palette names. The special name "distro", and any name
// that is not a known color, is skipped; an empty result keeps the logo's
// own palette.
func LogoPalette(names []string) []ansi.Color {
	var palette []ansi.Color
	for _, name := range names {
		if c, ok := ansi.ParseColor(name); ok {
			palette = append(palette, c)
		}
	}
	return palette
}

func noSwatch(s config.Settings) config.Settings {
	s.Format.ColorBlocks = false
	return s
}

// warnWideText logs when rune counts and terminal cell widths disagree.
// Layout counts runes, so wide glyphs will push the info column right.
func warnWideText(logo ascii.Logo, rows []DisplayRow) {
	for _, line := range logo.Lines {
		if ansi.DisplayWidth(line) != ansi.VisibleLength(line) {
			log.Debug().Str("line", line).Msg("Logo contains wide characters, columns may drift")
			break
		}
	}
	for _, row := range rows {
		if row.Visible() && ansi.DisplayWidth(row.Value) != ansi.VisibleLength(row.Value) {
			log.Debug().Str("label", row.Label).Msg("Value contains wide characters, truncation counts runes")
		}
	}
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
