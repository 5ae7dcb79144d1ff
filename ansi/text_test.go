package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"colored", "\033[36mOS\033[0m: Linux", "OS: Linux"},
		{"bold and color", "\033[1;32muser@host\033[0m", "user@host"},
		{"unterminated escape swallows rest", "ab\033[31cd", "ab"},
		{"second escape inside span", "a\033[3\033[1mb", "ab"},
		{"empty", "", ""},
		{"multibyte", "\033[31mhéllo\033[0m", "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strip(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Strip(got), "Strip must be idempotent")
			assert.Equal(t, VisibleLength(tt.in), VisibleLength(got))
		})
	}
}

func TestVisibleLength(t *testing.T) {
	assert.Equal(t, 0, VisibleLength(""))
	assert.Equal(t, 5, VisibleLength("hello"))
	assert.Equal(t, 9, VisibleLength(Style("OS: Linux", ColorCyan, true)))
	assert.Equal(t, 5, VisibleLength("héllo"), "counts runes, not bytes")
	assert.Equal(t, 2, VisibleLength("日本"), "counts runes, not cells")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 5, "hello"},
		{"plain cut", "abcdefghij", 5, "ab..."},
		{"escape kept verbatim", "\033[31mabcdefghij\033[0m", 6, "\033[31mabc..."},
		{"escape after cut point is dropped", "abc\033[31mdefghij", 4, "a..."},
		{"width below ellipsis", "abcdefghij", 2, "..."},
		{"zero width", "abcdefghij", 0, "..."},
		{"negative width", "abc", -4, "..."},
		{"multibyte counted as runes", "ééééééé", 5, "éé..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Truncate(got, tt.maxWidth), "Truncate must be idempotent")
		})
	}
}

func TestTruncateNeverExceedsWidth(t *testing.T) {
	s := Style("Terminal Font", ColorCyan, true) + ": " + Wrap("JetBrains Mono Nerd Font 11", ColorWhite)
	for w := 3; w < 60; w++ {
		assert.LessOrEqual(t, VisibleLength(Truncate(s, w)), w, "width %d", w)
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "Hi   ", PadRight("Hi", 5))
	assert.Equal(t, "HelloWorld", PadRight("HelloWorld", 5))
	assert.Equal(t, "\033[31mHi\033[0m   ", PadRight("\033[31mHi\033[0m", 5))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 5, DisplayWidth("\033[31mhello\033[0m"))
	assert.Equal(t, 4, DisplayWidth("日本"))
}
