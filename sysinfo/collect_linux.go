//go:build linux

package sysinfo

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

// collectPlatform fills the Linux-specific fields from /etc, /proc, /sys and
// sysinfo(2).
func collectPlatform(info *SystemInfo, opts Options) {
	info.OS = getLinuxDistro()
	info.Host = getLinuxHost()
	info.Kernel = kernelRelease()
	info.CPU = getLinuxCPU()
	info.Disk = getDiskInfo()
	info.Resolution = getLinuxResolution()
	info.Battery = getLinuxBattery()

	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		log.Debug().Err(err).Str("probe", "sysinfo").Msg("Probe failed")
		info.Uptime = Unknown
		info.Memory = getLinuxMemory(nil, opts.MemoryUnit)
		return
	}

	info.Uptime = FormatUptime(time.Duration(si.Uptime)*time.Second, opts.UptimeShorthand)
	info.Memory = getLinuxMemory(&si, opts.MemoryUnit)
}

// getLinuxDistro reads PRETTY_NAME from os-release, then lsb-release.
func getLinuxDistro() string {
	if data, err := os.ReadFile("/etc/os-release"); err == nil {
		if name := parseKeyValue(string(data), "PRETTY_NAME", "="); name != "" {
			return name
		}
	}
	if data, err := os.ReadFile("/etc/lsb-release"); err == nil {
		if name := parseKeyValue(string(data), "DISTRIB_DESCRIPTION", "="); name != "" {
			return name
		}
	}
	return "Linux"
}

// getLinuxHost reads the DMI product name, falling back to the board name
// and then the device-tree model used on ARM boards.
func getLinuxHost() string {
	for _, path := range []string{
		"/sys/devices/virtual/dmi/id/product_name",
		"/sys/devices/virtual/dmi/id/board_name",
		"/sys/firmware/devicetree/base/model",
	} {
		if v := strings.Trim(readFirstLine(path), "\x00"); v != "" {
			return v
		}
	}
	return Unknown
}

func getLinuxCPU() string {
	data, err := os.ReadFile("/proc/cpuinfo")
	if err != nil {
		log.Debug().Err(err).Str("probe", "cpu").Msg("Probe failed")
		return Unknown
	}
	content := string(data)
	for _, key := range []string{"model name", "Hardware", "cpu model"} {
		if v := parseKeyValue(content, key, ":"); v != "" {
			return formatCPU(v)
		}
	}
	return Unknown
}

// getLinuxMemory prefers MemAvailable from /proc/meminfo and falls back to
// the sysinfo(2) counters.
func getLinuxMemory(si *unix.Sysinfo_t, unit string) string {
	if data, err := os.ReadFile("/proc/meminfo"); err == nil {
		total := parseMeminfoKB(string(data), "MemTotal")
		avail := parseMeminfoKB(string(data), "MemAvailable")
		if total > 0 && avail <= total {
			return FormatMemory((total-avail)*1024, total*1024, unit)
		}
	}
	if si == nil {
		return Unknown
	}
	mult := uint64(si.Unit)
	if mult == 0 {
		mult = 1
	}
	total := uint64(si.Totalram) * mult
	free := (uint64(si.Freeram) + uint64(si.Bufferram)) * mult
	if total == 0 || free > total {
		return Unknown
	}
	return FormatMemory(total-free, total, unit)
}

// parseMeminfoKB returns the kB value of key from /proc/meminfo content.
func parseMeminfoKB(content, key string) uint64 {
	v := strings.TrimSuffix(parseKeyValue(content, key, ":"), " kB")
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// getLinuxResolution reads the preferred mode of the first connected DRM
// output.
func getLinuxResolution() string {
	outputs, _ := filepath.Glob("/sys/class/drm/card*-*")
	for _, out := range outputs {
		if readFirstLine(filepath.Join(out, "status")) != "connected" {
			continue
		}
		if mode := readFirstLine(filepath.Join(out, "modes")); mode != "" {
			return mode
		}
	}
	return Unknown
}

func getLinuxBattery() string {
	batteries, _ := filepath.Glob("/sys/class/power_supply/BAT*")
	for _, bat := range batteries {
		capacity := readFirstLine(filepath.Join(bat, "capacity"))
		if capacity == "" {
			continue
		}
		if status := readFirstLine(filepath.Join(bat, "status")); status != "" {
			return capacity + "% [" + status + "]"
		}
		return capacity + "%"
	}
	return Unknown
}
