//go:build windows

// Package sysinfo - Windows-specific implementation
package sysinfo

import (
	"fmt"
	"strconv"
	"strings"
	"syscall"
	"time"
	"unsafe"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	moduser32   = windows.NewLazySystemDLL("user32.dll")

	procGetTickCount64       = modkernel32.NewProc("GetTickCount64")
	procGlobalMemoryStatusEx = modkernel32.NewProc("GlobalMemoryStatusEx")
	procGetSystemMetrics     = moduser32.NewProc("GetSystemMetrics")
	procRtlGetVersion        = windows.NewLazySystemDLL("ntdll.dll").NewProc("RtlGetVersion")
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// memoryStatusEx represents the Windows MEMORYSTATUSEX structure.
type memoryStatusEx struct {
	dwLength                uint32
	dwMemoryLoad            uint32
	ullTotalPhys            uint64
	ullAvailPhys            uint64
	ullTotalPageFile        uint64
	ullAvailPageFile        uint64
	ullTotalVirtual         uint64
	ullAvailVirtual         uint64
	ullAvailExtendedVirtual uint64
}

// collectPlatform fills the Windows-specific fields from the registry and
// kernel32/user32/ntdll calls.
func collectPlatform(info *SystemInfo, opts Options) {
	info.OS = getWindowsVersion()
	info.Host = getComputerModel()
	info.Kernel = getWindowsKernel()
	info.Uptime = getUptime(opts.UptimeShorthand)
	info.CPU = getCPUInfo()
	info.Memory = getMemoryInfo(opts.MemoryUnit)
	info.Resolution = getScreenResolution()
	info.Disk = getDiskInfo()
}

// getWindowsVersion retrieves the Windows product name and display version.
//
// Returns:
//   - A string such as "Windows 11 Pro 23H2"
//   - "Windows" if the registry cannot be read
//
// The registry still reports "Windows 10" on Windows 11, so the build number
// from RtlGetVersion is used to correct it.
func getWindowsVersion() string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return "Windows"
	}
	defer func() { _ = k.Close() }()

	productName, _, err := k.GetStringValue("ProductName")
	if err != nil {
		return "Windows"
	}
	displayVersion, _, derr := k.GetStringValue("DisplayVersion")

	build := 0
	if _, _, b, rerr := rtlGetVersion(); rerr == nil {
		build = int(b)
	} else if s, _, _ := k.GetStringValue("CurrentBuild"); s != "" {
		build, _ = strconv.Atoi(s)
	}

	if build >= 22000 && strings.Contains(strings.ToLower(productName), "windows 10") {
		productName = strings.Replace(productName, "Windows 10", "Windows 11", 1)
	}

	if derr == nil && displayVersion != "" {
		return fmt.Sprintf("%s %s", productName, displayVersion)
	}
	return productName
}

// getWindowsKernel returns the NT version as major.minor.build.
func getWindowsKernel() string {
	maj, mnr, build, err := rtlGetVersion()
	if err != nil {
		log.Debug().Err(err).Str("probe", "kernel").Msg("Probe failed")
		return Unknown
	}
	return fmt.Sprintf("%d.%d.%d", maj, mnr, build)
}

// getComputerModel reads manufacturer and model from the registry.
//
// Returns:
//   - "Manufacturer Model", or whichever half is available
//   - Unknown if neither is set
func getComputerModel() string {
	const sysInfoKey = `SYSTEM\CurrentControlSet\Control\SystemInformation`
	const biosKey = `HARDWARE\DESCRIPTION\System\BIOS`

	manufacturer := getRegistryString(registry.LOCAL_MACHINE, sysInfoKey, "SystemManufacturer")
	model := getRegistryString(registry.LOCAL_MACHINE, sysInfoKey, "SystemProductName")
	if manufacturer == "" {
		manufacturer = getRegistryString(registry.LOCAL_MACHINE, biosKey, "SystemManufacturer")
	}
	if model == "" {
		model = getRegistryString(registry.LOCAL_MACHINE, biosKey, "SystemProductName")
	}

	switch {
	case manufacturer != "" && model != "":
		return manufacturer + " " + model
	case manufacturer != "":
		return manufacturer
	case model != "":
		return model
	}
	return Unknown
}

// getUptime formats the time since boot reported by GetTickCount64.
func getUptime(shorthand string) string {
	ret, _, _ := procGetTickCount64.Call()
	if ret == 0 {
		return Unknown
	}
	return FormatUptime(time.Duration(ret)*time.Millisecond, shorthand)
}

// getCPUInfo reads the processor brand string from the registry.
func getCPUInfo() string {
	name := getRegistryString(registry.LOCAL_MACHINE, `HARDWARE\DESCRIPTION\System\CentralProcessor\0`, "ProcessorNameString")
	return formatCPU(name)
}

// getMemoryInfo reports used/total physical memory.
func getMemoryInfo(unit string) string {
	var memInfo memoryStatusEx
	memInfo.dwLength = uint32(unsafe.Sizeof(memInfo))

	ret, _, _ := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&memInfo)))
	if ret == 0 {
		return Unknown
	}
	return FormatMemory(memInfo.ullTotalPhys-memInfo.ullAvailPhys, memInfo.ullTotalPhys, unit)
}

// getScreenResolution returns the primary display size.
func getScreenResolution() string {
	const (
		smCxScreen = 0
		smCyScreen = 1
	)

	width, _, _ := procGetSystemMetrics.Call(uintptr(smCxScreen))
	height, _, _ := procGetSystemMetrics.Call(uintptr(smCyScreen))
	if width == 0 || height == 0 {
		return Unknown
	}
	return fmt.Sprintf("%dx%d", width, height)
}

// getDiskInfo reports usage of the system drive.
func getDiskInfo() string {
	drive, err := windows.UTF16PtrFromString(`C:\`)
	if err != nil {
		return Unknown
	}

	var freeAvail, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(drive, &freeAvail, &total, &totalFree); err != nil {
		log.Debug().Err(err).Str("probe", "disk").Msg("Probe failed")
		return Unknown
	}
	return formatDisk(total, totalFree)
}

func getRegistryString(key registry.Key, path string, valueName string) string {
	k, err := registry.OpenKey(key, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	value, _, err := k.GetStringValue(valueName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}

// rtlGetVersion calls ntdll.RtlGetVersion to obtain accurate Windows version info.
func rtlGetVersion() (major uint32, minor uint32, build uint32, err error) {
	// OSVERSIONINFOEXW
	type osver struct {
		dwOSVersionInfoSize uint32
		dwMajorVersion      uint32
		dwMinorVersion      uint32
		dwBuildNumber       uint32
		dwPlatformID        uint32
		szCSDVersion        [128]uint16
		wServicePackMajor   uint16
		wServicePackMinor   uint16
		wSuiteMask          uint16
		wProductType        byte
		wReserved           byte
	}

	var v osver
	v.dwOSVersionInfoSize = uint32(unsafe.Sizeof(v))

	ret, _, callErr := procRtlGetVersion.Call(uintptr(unsafe.Pointer(&v)))
	if ret != 0 {
		if callErr != nil && callErr != syscall.Errno(0) {
			return 0, 0, 0, callErr
		}
		return 0, 0, 0, fmt.Errorf("RtlGetVersion failed: ret=%d", ret)
	}

	return v.dwMajorVersion, v.dwMinorVersion, v.dwBuildNumber, nil
}
