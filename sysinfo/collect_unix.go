//go:build linux || darwin

package sysinfo

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

// kernelRelease returns the uname release string, e.g. "6.5.0-14-generic".
func kernelRelease() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		log.Debug().Err(err).Str("probe", "kernel").Msg("Probe failed")
		return Unknown
	}
	return unix.ByteSliceToString(uts.Release[:])
}

// getDiskInfo reports usage of the root filesystem.
func getDiskInfo() string {
	var st unix.Statfs_t
	if err := unix.Statfs("/", &st); err != nil {
		log.Debug().Err(err).Str("probe", "disk").Msg("Probe failed")
		return Unknown
	}
	bsize := uint64(st.Bsize)
	return formatDisk(uint64(st.Blocks)*bsize, uint64(st.Bavail)*bsize)
}
