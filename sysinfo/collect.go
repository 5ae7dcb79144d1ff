package sysinfo

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Options controls how collected values are formatted.
type Options struct {
	// TitleFQDN keeps the domain part of the host name in the title.
	TitleFQDN bool

	// MemoryUnit is "kib", "mib" or "gib".
	MemoryUnit string

	// UptimeShorthand is "on", "tiny" or "off".
	UptimeShorthand string

	// ColorBlocks enables the swatch in the Colors field.
	ColorBlocks bool

	// BlockStart and BlockEnd bound the swatch palette, inclusive.
	BlockStart, BlockEnd int

	// BlockWidth is the number of cells per swatch block.
	BlockWidth int
}

// GetSystemInfo retrieves comprehensive system information.
// This is the main entry point for gathering all system details.
//
// Returns:
//   - A populated SystemInfo; probes that fail leave Unknown in their field
//
// Platform-specific probes live in collect_<os>.go. Nothing here spawns a
// process: values come from the environment, files and system calls.
func GetSystemInfo(opts Options) *SystemInfo {
	start := time.Now()
	info := &SystemInfo{}

	info.Title = getTitle(opts.TitleFQDN)
	info.Shell = getShell()
	info.Terminal = getTerminal()
	info.DE = getDesktop()
	info.Locale = getLocale()
	info.Users = currentUsername()
	info.LocalIP = getLocalIP()

	collectPlatform(info, opts)

	if opts.ColorBlocks {
		info.Colors = ColorBlocks(opts.BlockStart, opts.BlockEnd, opts.BlockWidth)
	}

	for name, p := range info.fields() {
		if name == "colors" {
			continue
		}
		if strings.TrimSpace(*p) == "" {
			*p = Unknown
		}
	}

	log.Debug().
		Str("operation", "collect").
		Dur("duration", time.Since(start)).
		Str("os", info.OS).
		Msg("System info collected")

	return info
}

// getTitle returns user@host, trimming the domain unless fqdn is set.
func getTitle(fqdn bool) string {
	host, err := os.Hostname()
	if err != nil {
		log.Debug().Err(err).Str("probe", "hostname").Msg("Probe failed")
		host = "unknown"
	}
	if !fqdn {
		host = ShortHostname(host)
	}
	return fmt.Sprintf("%s@%s", currentUsername(), host)
}

// currentUsername returns the login name without any Windows domain prefix.
func currentUsername() string {
	name := ""
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	if name == "" {
		name = firstEnv("USER", "USERNAME", "LOGNAME")
	}
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return "unknown"
	}
	return name
}

// getShell returns the basename of $SHELL.
func getShell() string {
	shell := os.Getenv("SHELL")
	if shell == "" {
		if runtime.GOOS == "windows" {
			return windowsShell()
		}
		return Unknown
	}
	return filepath.Base(shell)
}

// windowsShell guesses the shell from variables PowerShell and cmd.exe set.
func windowsShell() string {
	if os.Getenv("PSModulePath") != "" {
		return "PowerShell"
	}
	if comspec := os.Getenv("ComSpec"); comspec != "" {
		return filepath.Base(comspec)
	}
	return "cmd.exe"
}

// getTerminal attempts to identify the terminal emulator being used.
//
// Returns:
//   - The terminal name if identifiable (e.g., "Windows Terminal")
//   - The value of TERM environment variable as fallback
//   - Unknown when nothing is set
func getTerminal() string {
	if os.Getenv("WT_SESSION") != "" {
		return "Windows Terminal"
	}
	if term := firstEnv("TERM_PROGRAM", "TERMINAL_EMULATOR", "TERM"); term != "" {
		return term
	}
	return Unknown
}

func getDesktop() string {
	if de := firstEnv("XDG_CURRENT_DESKTOP", "DESKTOP_SESSION"); de != "" {
		return de
	}
	return Unknown
}

func getLocale() string {
	if l := firstEnv("LC_ALL", "LANG"); l != "" {
		return l
	}
	return Unknown
}

// getLocalIP returns the first private IPv4 address, or the first
// non-loopback one when there is no private address.
func getLocalIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		log.Debug().Err(err).Str("probe", "local_ip").Msg("Probe failed")
		return Unknown
	}

	fallback := ""
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		ip := ipNet.IP.To4()
		if ip == nil || ip.IsLoopback() || ip.IsLinkLocalUnicast() {
			continue
		}
		if ip.IsPrivate() {
			return ip.String()
		}
		if fallback == "" {
			fallback = ip.String()
		}
	}
	if fallback == "" {
		return Unknown
	}
	return fallback
}

// formatCPU appends the logical core count to a cleaned brand string.
func formatCPU(brand string) string {
	brand = CleanCPUName(brand)
	if brand == "" {
		return Unknown
	}
	if n := runtime.NumCPU(); n > 0 {
		return fmt.Sprintf("%s (%d cores)", brand, n)
	}
	return brand
}

// formatDisk renders used / total (percent) for a filesystem.
func formatDisk(total, free uint64) string {
	if total == 0 || free > total {
		return Unknown
	}
	used := total - free
	return fmt.Sprintf("%s / %s (%d%%)", FormatBytes(used), FormatBytes(total), used*100/total)
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// readFirstLine returns the trimmed first line of a file, or "" on error.
func readFirstLine(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line)
}

// parseKeyValue scans KEY=value (or KEY: value with sep ":") lines and
// returns the unquoted value for key.
func parseKeyValue(content, key, sep string) string {
	for _, line := range strings.Split(content, "\n") {
		k, v, ok := strings.Cut(line, sep)
		if !ok || strings.TrimSpace(k) != key {
			continue
		}
		return strings.Trim(strings.TrimSpace(v), `"'`)
	}
	return ""
}
