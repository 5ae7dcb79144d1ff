package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofetch/ansi"
	"gofetch/config"
	"gofetch/sysinfo"
)

type fieldMap map[string]string

func (m fieldMap) Get(name string) string { return m[name] }

func sampleFields() fieldMap {
	return fieldMap{
		"title":    "me@box",
		"os":       "Arch Linux",
		"host":     "ThinkPad X1 Carbon",
		"kernel":   "6.6.1-arch1-1",
		"uptime":   "3 hours, 2 mins",
		"packages": "1024 (pacman)",
		"shell":    "zsh",
		"wm":       "sway",
		"gpu":      "Unknown",
		"terminal": "foot",
		"cpu":      "AMD Ryzen 7 5800X (16 cores)",
		"memory":   "4120MiB / 31980MiB",
	}
}

func TestBuildRowsOrder(t *testing.T) {
	rows := BuildRows(sampleFields(), config.Defaults())

	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.Label
	}
	assert.Equal(t, []string{
		"", "", "OS", "Host", "Kernel", "Uptime", "Packages", "Shell",
		"Resolution", "DE", "WM", "WM Theme", "Theme", "Icons",
		"Terminal", "Terminal Font", "CPU", "GPU", "Memory",
	}, labels)

	assert.Equal(t, "me@box", rows[0].Value)
	assert.Equal(t, "------", rows[1].Value)
}

func TestBuildRowsVisibility(t *testing.T) {
	fields := sampleFields()
	fields["kernel"] = sysinfo.Unknown
	rows := BuildRows(fields, config.Defaults())

	byLabel := map[string]DisplayRow{}
	for _, r := range rows[2:] {
		byLabel[r.Label] = r
	}

	// always-shown rows keep Show even when their value is missing
	assert.True(t, byLabel["Kernel"].Show)
	assert.False(t, byLabel["Kernel"].Visible())

	// conditional rows depend on their value
	assert.True(t, byLabel["WM"].Show)
	assert.False(t, byLabel["GPU"].Show)
	assert.False(t, byLabel["Resolution"].Show)
	assert.False(t, byLabel["Theme"].Show)

	for _, r := range rows {
		if r.Value == "" || r.Value == sysinfo.Unknown {
			assert.False(t, r.Visible(), "row %q", r.Label)
		}
	}
}

func TestBuildRowsUnderlineDisabled(t *testing.T) {
	s := config.Defaults()
	s.Info.UnderlineEnabled = false
	rows := BuildRows(sampleFields(), s)
	assert.False(t, rows[1].Show)
	assert.Equal(t, "", rows[1].Value)
}

func TestGenerateUnderline(t *testing.T) {
	s := config.Defaults()
	assert.Equal(t, "-----", GenerateUnderline("hello", s))
	assert.Equal(t, "-----", GenerateUnderline("héllo", s), "counts runes, not bytes")

	s.Info.UnderlineChar = "="
	assert.Equal(t, "===", GenerateUnderline("abc", s))

	s.Info.UnderlineEnabled = false
	assert.Equal(t, "", GenerateUnderline("hello", s))
}

func TestFormatRowLabeled(t *testing.T) {
	s := config.Defaults()
	row := DisplayRow{Label: "OS", Value: "Arch", Show: true}

	got := FormatRow(row, s, 80)
	assert.Equal(t, "\033[1;36mOS\033[0m\033[37m:\033[0m \033[37mArch\033[0m", got)
	assert.Equal(t, "OS: Arch", ansi.Strip(got))

	s.Info.Bold = false
	assert.Equal(t, "\033[36mOS\033[0m\033[37m:\033[0m \033[37mArch\033[0m", FormatRow(row, s, 80))

	s.Info.Separator = " ->"
	assert.Equal(t, "OS -> Arch", ansi.Strip(FormatRow(row, s, 80)))
}

func TestFormatRowTruncates(t *testing.T) {
	row := DisplayRow{Label: "CPU", Value: "AMD Ryzen 9 7950X", Show: true}
	got := FormatRow(row, config.Defaults(), 10)

	assert.Equal(t, "\033[1;36mCPU\033[0m\033[37m:\033[0m \033[37mAM...", got)
	assert.Equal(t, "CPU: AM...", ansi.Strip(got))
	assert.Equal(t, 10, ansi.VisibleLength(got))
}

func TestFormatRowSpecial(t *testing.T) {
	s := config.Defaults()

	swatch := "\033[41m   \033[0m\033[42m   \033[0m"
	assert.Equal(t, swatch, FormatRow(DisplayRow{Value: swatch, Show: true}, s, 2),
		"pre-rendered rows pass through untouched")

	assert.Equal(t, ansi.Cyan+"-----"+ansi.Reset, FormatRow(DisplayRow{Value: "-----", Show: true}, s, 80))
	assert.Equal(t, ansi.Cyan+"=_="+ansi.Reset, FormatRow(DisplayRow{Value: "=_=", Show: true}, s, 80))

	assert.Equal(t, "\033[1;32mme@box\033[0m", FormatRow(DisplayRow{Value: "me@box", Show: true}, s, 80))
	s.Info.Bold = false
	assert.Equal(t, ansi.Green+"me@box"+ansi.Reset, FormatRow(DisplayRow{Value: "me@box", Show: true}, s, 80))

	title := FormatRow(DisplayRow{Value: "someone@a-very-long-hostname", Show: true}, s, 8)
	assert.Equal(t, "someo...", ansi.Strip(title))
}

func TestFormatRowHidesMissingValues(t *testing.T) {
	s := config.Defaults()
	assert.Equal(t, "", FormatRow(DisplayRow{Label: "GPU", Value: sysinfo.Unknown, Show: true}, s, 80))
	assert.Equal(t, "", FormatRow(DisplayRow{Label: "GPU", Value: "", Show: true}, s, 80))
	assert.Equal(t, "", FormatRow(DisplayRow{Value: "", Show: true}, s, 80))
}

func TestBuildRowsFromSystemInfo(t *testing.T) {
	info := sysinfo.FromMap(map[string]string{"title": "a@b", "distro": "Debian"})
	rows := BuildRows(info, config.Defaults())
	require.Len(t, rows, 19)
	assert.Equal(t, "Debian", rows[2].Value)
}
