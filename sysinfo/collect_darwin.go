//go:build darwin

package sysinfo

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

// collectPlatform fills the macOS-specific fields from sysctl(3).
func collectPlatform(info *SystemInfo, opts Options) {
	info.OS = "macOS"
	if v, err := unix.Sysctl("kern.osproductversion"); err == nil && v != "" {
		info.OS = "macOS " + v
	}

	info.Kernel = kernelRelease()
	info.Disk = getDiskInfo()

	if v, err := unix.Sysctl("hw.model"); err == nil {
		info.Host = v
	}

	if v, err := unix.Sysctl("machdep.cpu.brand_string"); err == nil {
		info.CPU = formatCPU(v)
	} else {
		log.Debug().Err(err).Str("probe", "cpu").Msg("Probe failed")
	}

	if tv, err := unix.SysctlTimeval("kern.boottime"); err == nil {
		sec, nsec := tv.Unix()
		info.Uptime = FormatUptime(time.Since(time.Unix(sec, nsec)), opts.UptimeShorthand)
	} else {
		log.Debug().Err(err).Str("probe", "uptime").Msg("Probe failed")
	}

	// Used memory needs the Mach host_statistics API; only the total is
	// available through sysctl.
	if total, err := unix.SysctlUint64("hw.memsize"); err == nil && total > 0 {
		info.Memory = FormatBytes(total)
	} else {
		log.Debug().Err(err).Str("probe", "memory").Msg("Probe failed")
	}
}
