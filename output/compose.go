package output

import (
	"strings"

	"gofetch/ansi"
	"gofetch/ascii"
	"gofetch/config"
)

const (
	// infoMargin is kept free at the right edge of the terminal.
	infoMargin = 5
	// minInfoSlack is how much room must remain beside the logo before the
	// info column is sized from the terminal width.
	minInfoSlack = 10
	// fallbackInfoWidth is used on terminals too narrow for the logo.
	fallbackInfoWidth = 40
)

// InfoWidth returns the visible width available to the info column.
// Narrow terminals get a fixed fallback rather than a negative width.
func InfoWidth(logoWidth, gap, terminalWidth int) int {
	used := logoWidth + gap
	if terminalWidth > used+minInfoSlack {
		return terminalWidth - used - infoMargin
	}
	return fallbackInfoWidth
}

// Compose merges the colorized logo with the shown rows, line by line.
// Every row with Show set takes a line; FormatRow leaves the info cell empty
// when its value is Unknown. The logo column is padded to its widest line by
// visible length, so escape sequences never shift the info column. When the
// logo runs out first the column is filled with spaces; when the rows run out
// first nothing follows the gap. A cell cut short by truncation is closed with
// a reset. The swatch, if given and enabled, is appended below and indented to
// line up with the info column.
func Compose(logo ascii.Logo, rows []DisplayRow, swatch string, s config.Settings, terminalWidth int) []string {
	gap := s.Display.Gap
	if gap < 0 {
		gap = 0
	}

	colored := ascii.Colorize(logo, ansi.ColorWhite, s.Display.AsciiBold)
	logoWidth := logo.Width()
	logoHeight := len(colored)
	infoWidth := InfoWidth(logoWidth, gap, terminalWidth)

	shown := make([]DisplayRow, 0, len(rows))
	for _, row := range rows {
		if row.Show {
			shown = append(shown, row)
		}
	}

	total := max(logoHeight, len(shown))
	gapText := strings.Repeat(" ", gap)
	blank := strings.Repeat(" ", logoWidth)

	lines := make([]string, 0, total+2)
	next := 0
	for i := 0; i < total; i++ {
		var b strings.Builder
		if i < logoHeight {
			b.WriteString(ansi.PadRight(colored[i], logoWidth))
		} else {
			b.WriteString(blank)
		}
		b.WriteString(gapText)

		if next < len(shown) {
			cell := FormatRow(shown[next], s, infoWidth)
			b.WriteString(cell)
			if truncatedStyled(cell) {
				b.WriteString(ansi.Reset)
			}
			next++
		}
		lines = append(lines, b.String())
	}

	if s.Format.ColorBlocks && swatch != "" {
		indent := strings.Repeat(" ", logoWidth+gap)
		for _, row := range strings.Split(swatch, "\n") {
			if row == "" {
				continue
			}
			lines = append(lines, indent+row)
		}
	}

	return lines
}

// truncatedStyled reports whether cell was cut inside a styled span. Styled
// cells that fit end with a reset, so a trailing ellipsis after an escape
// means the reset was dropped.
func truncatedStyled(cell string) bool {
	return strings.HasSuffix(cell, ansi.Ellipsis) && strings.ContainsRune(cell, ansi.Escape)
}
