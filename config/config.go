// Package config holds the render settings and loads them from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// AppName names the config directory under XDG_CONFIG_HOME.
const AppName = "gofetch"

// Settings controls one render pass. It is treated as immutable once a
// render starts.
type Settings struct {
	Info    InfoSettings    `toml:"info"`
	Display DisplaySettings `toml:"display"`
	Format  FormatSettings  `toml:"format"`

	// JSON selects the machine-readable output mode. Command line only.
	JSON bool `toml:"-"`
	// LogoOnly hides the info column. Command line only.
	LogoOnly bool `toml:"-"`
}

// InfoSettings covers how info rows are labelled and styled.
type InfoSettings struct {
	Bold             bool   `toml:"bold"`
	UnderlineEnabled bool   `toml:"underline_enabled"`
	UnderlineChar    string `toml:"underline_char"`
	Separator        string `toml:"separator"`
	TitleFQDN        bool   `toml:"title_fqdn"`
	MemoryUnit       string `toml:"memory_unit"`
	UptimeShorthand  string `toml:"uptime_shorthand"`
}

// DisplaySettings covers the logo column.
type DisplaySettings struct {
	Backend     Backend  `toml:"image_backend"`
	AsciiDistro string   `toml:"ascii_distro"`
	AsciiColors []string `toml:"ascii_colors"`
	AsciiBold   bool     `toml:"ascii_bold"`
	Gap         int      `toml:"gap"`
	Stdout      bool     `toml:"stdout"`
}

// FormatSettings covers the color-swatch footer.
type FormatSettings struct {
	ColorBlocks bool  `toml:"color_blocks"`
	BlockRange  []int `toml:"block_range"`
	BlockWidth  int   `toml:"block_width"`
}

// Defaults returns the settings used when no config file is present.
func Defaults() Settings {
	return Settings{
		Info: InfoSettings{
			Bold:             true,
			UnderlineEnabled: true,
			UnderlineChar:    "-",
			Separator:        ":",
			MemoryUnit:       "mib",
			UptimeShorthand:  "on",
		},
		Display: DisplaySettings{
			Backend:     BackendASCII,
			AsciiColors: []string{"distro"},
			AsciiBold:   true,
			Gap:         3,
		},
		Format: FormatSettings{
			ColorBlocks: true,
			BlockRange:  []int{0, 15},
			BlockWidth:  3,
		},
	}
}

// Normalize clamps out-of-range values back to usable ones. It never fails.
func (s *Settings) Normalize() {
	def := Defaults()

	if s.Display.Gap < 0 {
		s.Display.Gap = 0
	}
	if s.Display.Backend == "" {
		s.Display.Backend = BackendASCII
	}
	if s.Info.UnderlineChar == "" {
		s.Info.UnderlineChar = def.Info.UnderlineChar
	}
	if s.Format.BlockWidth < 1 {
		s.Format.BlockWidth = def.Format.BlockWidth
	}
	if len(s.Format.BlockRange) != 2 {
		s.Format.BlockRange = def.Format.BlockRange
	}
	start, end := clamp(s.Format.BlockRange[0], 0, 15), clamp(s.Format.BlockRange[1], 0, 15)
	if start > end {
		start, end = end, start
	}
	s.Format.BlockRange = []int{start, end}

	switch strings.ToLower(s.Info.MemoryUnit) {
	case "kib", "mib", "gib":
		s.Info.MemoryUnit = strings.ToLower(s.Info.MemoryUnit)
	default:
		s.Info.MemoryUnit = def.Info.MemoryUnit
	}
	switch strings.ToLower(s.Info.UptimeShorthand) {
	case "on", "tiny", "off":
		s.Info.UptimeShorthand = strings.ToLower(s.Info.UptimeShorthand)
	default:
		s.Info.UptimeShorthand = def.Info.UptimeShorthand
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DefaultPath returns $XDG_CONFIG_HOME/gofetch/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// Load reads settings from path, layered over Defaults. An empty path means
// DefaultPath, and a missing default file is not an error. A file named
// explicitly must exist.
func Load(path string) (Settings, error) {
	settings := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return Defaults(), fmt.Errorf("failed to parse TOML in %s: %w", path, err)
	}

	settings.Normalize()
	return settings, nil
}

// Save writes s to path as TOML, creating parent directories.
func Save(s Settings, path string) error {
	if path == "" {
		path = DefaultPath()
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
