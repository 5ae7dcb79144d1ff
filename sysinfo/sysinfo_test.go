package sysinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAliases(t *testing.T) {
	info := &SystemInfo{
		OS:           "Arch Linux",
		Host:         "ThinkPad X1",
		Terminal:     "kitty",
		TerminalFont: "Iosevka 12",
		Colors:       "swatch",
	}

	tests := []struct {
		name string
		want string
	}{
		{"os", "Arch Linux"},
		{"distro", "Arch Linux"},
		{"model", "ThinkPad X1"},
		{"term", "kitty"},
		{"term_font", "Iosevka 12"},
		{"cols", "swatch"},
		{"COLORS", "swatch"},
		{"nonsense", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, info.Get(tt.name))
		})
	}

	_, ok := info.Lookup("nonsense")
	assert.False(t, ok)
}

func TestSetAndMap(t *testing.T) {
	info := &SystemInfo{}
	assert.True(t, info.Set("distro", "Fedora"))
	assert.True(t, info.Set("wm_theme", "Adwaita"))
	assert.False(t, info.Set("flux_capacitor", "1.21GW"))

	m := info.Map()
	assert.Equal(t, "Fedora", m["os"])
	assert.Equal(t, "Adwaita", m["wm_theme"])
	assert.NotContains(t, m, "distro", "aliases are not exported as keys")
	assert.Len(t, m, len(info.fields()))
	assert.Len(t, m, 27)
}

func TestFromMap(t *testing.T) {
	info := FromMap(map[string]string{"title": "me@box", "term": "foot", "bogus": "x"})
	assert.Equal(t, "me@box", info.Title)
	assert.Equal(t, "foot", info.Terminal)
}

func TestKnown(t *testing.T) {
	assert.False(t, Known(""))
	assert.False(t, Known(Unknown))
	assert.True(t, Known("x"))
}

func TestGetSystemInfoFillsEveryField(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	t.Setenv("TERM_PROGRAM", "WezTerm")
	t.Setenv("WT_SESSION", "")

	info := GetSystemInfo(Options{
		MemoryUnit:      "mib",
		UptimeShorthand: "on",
		ColorBlocks:     true,
		BlockStart:      0,
		BlockEnd:        15,
		BlockWidth:      3,
	})
	require.NotNil(t, info)

	assert.Equal(t, "zsh", info.Shell)
	assert.Equal(t, "WezTerm", info.Terminal)
	assert.Contains(t, info.Title, "@")
	assert.Len(t, strings.Split(info.Colors, "\n"), 2)

	for name, v := range info.Map() {
		assert.NotEmpty(t, v, "field %s", name)
	}
}

func TestGetSystemInfoWithoutColorBlocks(t *testing.T) {
	info := GetSystemInfo(Options{})
	assert.Empty(t, info.Colors)
}

func TestParseKeyValue(t *testing.T) {
	osRelease := "NAME=\"Ubuntu\"\nPRETTY_NAME=\"Ubuntu 22.04.3 LTS\"\nID=ubuntu\n"
	assert.Equal(t, "Ubuntu 22.04.3 LTS", parseKeyValue(osRelease, "PRETTY_NAME", "="))
	assert.Equal(t, "ubuntu", parseKeyValue(osRelease, "ID", "="))
	assert.Equal(t, "", parseKeyValue(osRelease, "VERSION", "="))

	cpuinfo := "processor\t: 0\nmodel name\t: AMD Ryzen 7 5800X 8-Core Processor\n"
	assert.Equal(t, "AMD Ryzen 7 5800X 8-Core Processor", parseKeyValue(cpuinfo, "model name", ":"))
}
