// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
	"time"
)

// FormatBytes converts a byte count to a human-readable string with appropriate units.
//
// Parameters:
//   - bytes: The number of bytes to format
//
// Returns:
//   - A formatted string with the most appropriate unit (B, KiB, MiB, GiB, TiB)
//
// Example: FormatBytes(1536) returns "1.5KiB"
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%dB", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit && exp < 4; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KiB", "MiB", "GiB", "TiB", "PiB"}
	return fmt.Sprintf("%.1f%s", float64(bytes)/float64(div), units[exp])
}

// FormatMemory renders used and total memory in a fixed unit.
//
// Parameters:
//   - used, total: Byte counts
//   - unit: "kib", "mib" or "gib"; anything else is treated as "mib"
//
// Returns:
//   - A string such as "3120MiB / 15890MiB"
func FormatMemory(used, total uint64, unit string) string {
	var div float64
	var suffix string
	switch strings.ToLower(unit) {
	case "kib":
		div, suffix = 1<<10, "KiB"
	case "gib":
		div, suffix = 1<<30, "GiB"
	default:
		div, suffix = 1<<20, "MiB"
	}

	if suffix == "GiB" {
		return fmt.Sprintf("%.1f%s / %.1f%s", float64(used)/div, suffix, float64(total)/div, suffix)
	}
	return fmt.Sprintf("%.0f%s / %.0f%s", float64(used)/div, suffix, float64(total)/div, suffix)
}

// FormatUptime renders a duration in one of three styles.
//
// Parameters:
//   - uptime: Time since boot
//   - shorthand: "on" for "2 days, 5 hours, 30 mins", "off" for
//     "2 days, 5 hours, 30 minutes", "tiny" for "2d 5h 30m"
//
// Returns:
//   - The formatted uptime; sub-minute uptimes render as zero minutes
func FormatUptime(uptime time.Duration, shorthand string) string {
	if uptime < 0 {
		uptime = 0
	}
	days := int(uptime.Hours() / 24)
	hours := int(uptime.Hours()) % 24
	mins := int(uptime.Minutes()) % 60

	if shorthand == "tiny" {
		var parts []string
		if days > 0 {
			parts = append(parts, fmt.Sprintf("%dd", days))
		}
		if hours > 0 {
			parts = append(parts, fmt.Sprintf("%dh", hours))
		}
		if mins > 0 || len(parts) == 0 {
			parts = append(parts, fmt.Sprintf("%dm", mins))
		}
		return strings.Join(parts, " ")
	}

	minWord := "min"
	if shorthand == "off" {
		minWord = "minute"
	}

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d day%s", days, plural(days)))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, plural(hours)))
	}
	if mins > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d %s%s", mins, minWord, plural(mins)))
	}

	return strings.Join(parts, ", ")
}

// plural returns "s" if count is not 1, empty string otherwise.
func plural(count int) string {
	if count != 1 {
		return "s"
	}
	return ""
}

// ColorBlocks renders the terminal palette swatch.
//
// Parameters:
//   - start, end: Inclusive palette range, 0-15
//   - width: Number of spaces per block
//
// Returns:
//   - One line per group of eight colors; normal colors use background
//     codes 40-47 and bright colors 100-107, each block reset after itself
func ColorBlocks(start, end, width int) string {
	if width < 1 {
		width = 1
	}
	if start < 0 {
		start = 0
	}
	if end > 15 {
		end = 15
	}

	block := strings.Repeat(" ", width)
	var lines []string
	var line strings.Builder
	for i := start; i <= end; i++ {
		code := 40 + i
		if i >= 8 {
			code = 100 + i - 8
		}
		fmt.Fprintf(&line, "\033[%dm%s\033[0m", code, block)

		if i == 7 || i == end {
			lines = append(lines, line.String())
			line.Reset()
		}
	}

	return strings.Join(lines, "\n")
}

// ShortHostname trims a fully qualified host name to its first label.
func ShortHostname(host string) string {
	if i := strings.IndexByte(host, '.'); i > 0 {
		return host[:i]
	}
	return host
}

// CleanCPUName drops vendor trademark noise from a processor brand string.
//
// Example: CleanCPUName("Intel(R) Core(TM) i7-8700 CPU @ 3.20GHz") returns "Intel Core i7-8700 @ 3.20GHz"
func CleanCPUName(name string) string {
	r := strings.NewReplacer("(R)", "", "(TM)", "", "(tm)", "", "CPU", "", "Processor", "")
	return strings.Join(strings.Fields(r.Replace(name)), " ")
}
