// Package sysinfo provides system information retrieval for the fetch display.
// It defines the flat set of named fields the renderer consumes and the
// platform-specific collectors that fill them.
package sysinfo

import "strings"

// Unknown is the value every field falls back to when a probe finds nothing.
const Unknown = "Unknown"

// SystemInfo represents the facts shown next to the logo. Every field is a
// display-ready string; a probe that fails leaves Unknown or "".
type SystemInfo struct {
	// Title is user@host
	Title string

	// OS is the full operating system name and version
	OS string

	// Host is the computer manufacturer and model
	Host string

	// Kernel is the operating system kernel version
	Kernel string

	// Uptime is the formatted system uptime duration
	Uptime string

	// Packages is the count of installed packages
	Packages string

	// Shell is the current command shell being used
	Shell string

	// Resolution is the primary display resolution
	Resolution string

	// DE is the desktop environment
	DE string

	// WM is the window manager
	WM string

	// WMTheme is the window manager theme
	WMTheme string

	// Theme is the GTK/Qt theme
	Theme string

	// Icons is the icon theme
	Icons string

	// Terminal is the terminal emulator being used
	Terminal string

	// TerminalFont is the font used by the terminal emulator
	TerminalFont string

	// CPU is the processor model and core count
	CPU string

	// GPU is the graphics processor model
	GPU string

	// Memory shows used/total RAM
	Memory string

	// Disk shows used/total disk space for the root filesystem
	Disk string

	// Battery is the battery charge, when there is one
	Battery string

	// LocalIP is the primary local IPv4 address
	LocalIP string

	// PublicIP is the public/external IP address
	PublicIP string

	// Users lists logged in users
	Users string

	// Locale is the session locale
	Locale string

	// GPUDriver is the graphics driver
	GPUDriver string

	// Song is the currently playing track
	Song string

	// Colors is the pre-rendered color swatch, one line per row of blocks
	Colors string
}

// fieldAliases maps alternative field names to their canonical name.
var fieldAliases = map[string]string{
	"distro":    "os",
	"model":     "host",
	"term":      "terminal",
	"term_font": "terminal_font",
	"cols":      "colors",
}

// CanonicalField resolves an alias such as "distro" to its canonical field
// name. Names that are not aliases are returned lowercased.
func CanonicalField(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := fieldAliases[name]; ok {
		return canonical
	}
	return name
}

// fields returns a pointer to every canonical field, keyed by name.
func (s *SystemInfo) fields() map[string]*string {
	return map[string]*string{
		"title":         &s.Title,
		"os":            &s.OS,
		"host":          &s.Host,
		"kernel":        &s.Kernel,
		"uptime":        &s.Uptime,
		"packages":      &s.Packages,
		"shell":         &s.Shell,
		"resolution":    &s.Resolution,
		"de":            &s.DE,
		"wm":            &s.WM,
		"wm_theme":      &s.WMTheme,
		"theme":         &s.Theme,
		"icons":         &s.Icons,
		"terminal":      &s.Terminal,
		"terminal_font": &s.TerminalFont,
		"cpu":           &s.CPU,
		"gpu":           &s.GPU,
		"memory":        &s.Memory,
		"disk":          &s.Disk,
		"battery":       &s.Battery,
		"local_ip":      &s.LocalIP,
		"public_ip":     &s.PublicIP,
		"users":         &s.Users,
		"locale":        &s.Locale,
		"gpu_driver":    &s.GPUDriver,
		"song":          &s.Song,
		"colors":        &s.Colors,
	}
}

// Lookup returns the value of the named field (aliases accepted) and
// whether the name is known.
func (s *SystemInfo) Lookup(name string) (string, bool) {
	p, ok := s.fields()[CanonicalField(name)]
	if !ok {
		return "", false
	}
	return *p, true
}

// Get returns the value of the named field, or "" for unknown names.
// It never fails.
func (s *SystemInfo) Get(name string) string {
	v, _ := s.Lookup(name)
	return v
}

// Set assigns the named field (aliases accepted). It reports false for
// unknown names.
func (s *SystemInfo) Set(name, value string) bool {
	p, ok := s.fields()[CanonicalField(name)]
	if ok {
		*p = value
	}
	return ok
}

// Map returns every canonical field as a flat name to value mapping.
func (s *SystemInfo) Map() map[string]string {
	fields := s.fields()
	out := make(map[string]string, len(fields))
	for name, p := range fields {
		out[name] = *p
	}
	return out
}

// FromMap builds a SystemInfo from a flat mapping. Unknown keys are ignored.
func FromMap(values map[string]string) *SystemInfo {
	info := &SystemInfo{}
	for name, v := range values {
		info.Set(name, v)
	}
	return info
}

// Known reports whether v carries a real value, i.e. it is neither empty
// nor the Unknown sentinel.
func Known(v string) bool {
	return v != "" && v != Unknown
}
