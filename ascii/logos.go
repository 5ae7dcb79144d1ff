// Package ascii provides ASCII art logos for the supported operating systems.
// Logos are stored uncolored and colored line by line from a cycling palette.
package ascii

import (
	"strings"

	"gofetch/ansi"
)

// Distro identifies one of the built-in logos.
type Distro int

const (
	Linux Distro = iota
	MacOS
	Ubuntu
	Arch
	Debian
	Fedora
	Windows
)

var distroKeys = map[Distro]string{
	MacOS:   "macos",
	Ubuntu:  "ubuntu",
	Arch:    "arch",
	Debian:  "debian",
	Fedora:  "fedora",
	Linux:   "linux",
	Windows: "windows",
}

// fuzzyOrder is the substring search order used when an identifier is not
// an exact key. The first match wins.
var fuzzyOrder = []struct {
	distro  Distro
	needles []string
}{
	{Ubuntu, []string{"ubuntu"}},
	{Arch, []string{"arch"}},
	{Debian, []string{"debian"}},
	{Fedora, []string{"fedora"}},
	{MacOS, []string{"mac", "darwin"}},
	{Windows, []string{"windows"}},
	{Linux, []string{"linux"}},
}

// String returns the lowercase key for d.
func (d Distro) String() string {
	if k, ok := distroKeys[d]; ok {
		return k
	}
	return distroKeys[Linux]
}

// ParseDistro normalizes an OS identifier such as "Ubuntu 22.04 LTS" to a
// Distro. Exact keys are tried first, then substring matches in a fixed
// order. Anything unrecognised resolves to Linux.
func ParseDistro(osName string) Distro {
	name := strings.ToLower(strings.TrimSpace(osName))

	for d, key := range distroKeys {
		if name == key {
			return d
		}
	}

	for _, candidate := range fuzzyOrder {
		for _, needle := range candidate.needles {
			if strings.Contains(name, needle) {
				return candidate.distro
			}
		}
	}

	return Linux
}

type logoData struct {
	lines  []string
	colors []ansi.Color
}

// Logo is a resolved piece of ASCII art and the palette cycled over its lines.
type Logo struct {
	Distro Distro
	Lines  []string
	Colors []ansi.Color
}

// Store resolves OS identifiers to logos. It is read-only once built.
type Store struct {
	logos map[Distro]Logo
}

// NewStore returns a store loaded with every built-in logo.
func NewStore() *Store {
	s := &Store{logos: make(map[Distro]Logo, len(logoTable))}
	for d, data := range logoTable {
		s.logos[d] = Logo{
			Distro: d,
			Lines:  append([]string(nil), data.lines...),
			Colors: append([]ansi.Color(nil), data.colors...),
		}
	}
	return s
}

// Resolve returns the logo for osName. It never fails: unknown names get the
// generic Linux logo.
func (s *Store) Resolve(osName string) Logo {
	return s.Get(ParseDistro(osName))
}

// Get returns a copy of the logo registered for d, falling back to Linux.
func (s *Store) Get(d Distro) Logo {
	logo, ok := s.logos[d]
	if !ok {
		logo = s.logos[Linux]
	}
	logo.Lines = append([]string(nil), logo.Lines...)
	logo.Colors = append([]ansi.Color(nil), logo.Colors...)
	return logo
}

// Width returns the widest visible line of the logo resolved for osName.
func (s *Store) Width(osName string) int {
	return s.Resolve(osName).Width()
}

// Height returns the number of lines in the logo resolved for osName.
func (s *Store) Height(osName string) int {
	return s.Resolve(osName).Height()
}

// Width is the maximum visible length across the logo's lines, 0 when empty.
func (l Logo) Width() int {
	width := 0
	for _, line := range l.Lines {
		if w := ansi.VisibleLength(line); w > width {
			width = w
		}
	}
	return width
}

// Height is the logo's line count.
func (l Logo) Height() int {
	return len(l.Lines)
}

// WithColors returns a copy of l using palette instead of its own colors.
// An empty palette leaves l unchanged.
func (l Logo) WithColors(palette []ansi.Color) Logo {
	if len(palette) == 0 {
		return l
	}
	l.Colors = append([]ansi.Color(nil), palette...)
	return l
}

// Colorize wraps line i in colors[i % len(colors)]. When the logo has no
// palette every line gets fallback. Unmapped colors leave the line as is.
func Colorize(l Logo, fallback ansi.Color, bold bool) []string {
	colors := l.Colors
	if len(colors) == 0 {
		colors = []ansi.Color{fallback}
	}

	out := make([]string, len(l.Lines))
	for i, line := range l.Lines {
		c := colors[i%len(colors)]
		if c.Code() == "" {
			out[i] = line
			continue
		}
		out[i] = ansi.Style(line, c, bold)
	}
	return out
}
