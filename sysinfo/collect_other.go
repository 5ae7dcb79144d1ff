//go:build !linux && !darwin && !windows

package sysinfo

import "runtime"

// collectPlatform only knows the OS family on platforms without a dedicated
// collector. Everything else stays Unknown.
func collectPlatform(info *SystemInfo, _ Options) {
	info.OS = runtime.GOOS
	info.CPU = formatCPU(runtime.GOARCH)
}
