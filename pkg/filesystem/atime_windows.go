//go:build windows

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// sysAccessTime gets the access time from FileInfo (Windows).
func sysAccessTime(info os.FileInfo) (time.Time, bool) {
	stat, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, false
	}

	return time.Unix(0, stat.LastAccessTime.Nanoseconds()), true
}
