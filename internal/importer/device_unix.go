//go:build unix

package importer

import (
	"os"
	"syscall"
)

// deviceID extracts the filesystem device id from a stat result.
// Hardlinks are only possible between paths on the same device.
func deviceID(info os.FileInfo) uint64 {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint64(st.Dev)
	}
	return 0
}
