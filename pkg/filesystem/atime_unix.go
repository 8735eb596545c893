//go:build !windows

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// sysAccessTime gets the access time from FileInfo (Unix).
func sysAccessTime(info os.FileInfo) (time.Time, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}

	return time.Unix(stat.Atim.Sec, stat.Atim.Nsec), true
}
