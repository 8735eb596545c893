// Package filesystem provides an abstraction layer for filesystem operations
// to enable dependency injection and testing without actual filesystem I/O.
//
// The FileSystem interface is deliberately a superset of kr/fs's FileSystem,
// so any implementation can be walked directly with fs.WalkFS.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileSystem is an interface that abstracts the filesystem operations the
// sweeper needs: listing, stat'ing, and recursive removal.
type FileSystem interface {
	// ReadDir reads the directory named by dirname and returns its entries.
	ReadDir(dirname string) ([]os.FileInfo, error)

	// Lstat returns a FileInfo describing the named file.
	// Symbolic links are not followed.
	Lstat(name string) (os.FileInfo, error)

	// Join joins any number of path elements into a single path.
	Join(elem ...string) string

	// RemoveAll removes path and everything it contains.
	RemoveAll(path string) error
}

// AccessTime extracts the last access time from a FileInfo.
// Mock filesystems smuggle the access time through Sys() as a time.Time;
// real filesystems report it through platform-specific stat data. When
// neither is available the modification time is used as a stand-in.
//
// Access times are a heuristic: some filesystems are mounted noatime and
// never update them, and reading a file can itself bump the access time.
func AccessTime(info os.FileInfo) time.Time {
	if atime, ok := info.Sys().(time.Time); ok {
		return atime
	}

	if atime, ok := sysAccessTime(info); ok {
		return atime
	}

	return info.ModTime()
}

// RealFileSystem implements FileSystem using actual os/filepath functions.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// Join joins path elements using the OS path separator.
func (fs *RealFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Lstat returns file information without following symlinks.
func (fs *RealFileSystem) Lstat(name string) (os.FileInfo, error) {
	info, err := os.Lstat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat %s: %w", name, err)
	}

	return info, nil
}

// ReadDir returns the entries of the named directory.
// Entries that vanish between the listing and the stat are skipped.
func (fs *RealFileSystem) ReadDir(dirname string) ([]os.FileInfo, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirname, err)
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// RemoveAll removes path and any children it contains.
func (fs *RealFileSystem) RemoveAll(path string) error {
	err := os.RemoveAll(path)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	return nil
}
