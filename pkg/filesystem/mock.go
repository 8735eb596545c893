package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// MockFileSystem is an in-memory filesystem implementation for testing.
// Errors can be injected per path to exercise the swallow-and-continue
// behavior of the scan and the per-folder failure handling of deletion.
type MockFileSystem struct {
	mu        sync.RWMutex
	entries   map[string]*mockEntry
	listErr   map[string]error
	statErr   map[string]error
	removeErr map[string]error
	removed   []string
}

// mockEntry represents a file, directory, or symlink in the mock filesystem.
type mockEntry struct {
	name    string
	size    int64
	mode    os.FileMode
	modTime time.Time
	atime   time.Time
}

// mockFileInfo implements os.FileInfo for mock entries.
// Sys returns the entry's access time so AccessTime can recover it.
type mockFileInfo struct {
	name    string
	size    int64
	mode    os.FileMode
	modTime time.Time
	atime   time.Time
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) Mode() os.FileMode  { return fi.mode }
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi *mockFileInfo) Sys() interface{}   { return fi.atime }

// NewMockFileSystem creates an empty mock filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		entries:   make(map[string]*mockEntry),
		listErr:   make(map[string]error),
		statErr:   make(map[string]error),
		removeErr: make(map[string]error),
	}
}

// AddDir adds a directory (and any missing parents) to the mock filesystem.
func (m *MockFileSystem) AddDir(path string, atime time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addParents(path)
	m.addEntry(path, &mockEntry{
		name:    filepath.Base(filepath.Clean(path)),
		mode:    os.ModeDir | 0o755,
		modTime: atime,
		atime:   atime,
	})
}

// AddFile adds a regular file (and any missing parents) with the given size.
func (m *MockFileSystem) AddFile(path string, size int64, atime time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addParents(path)
	m.addEntry(path, &mockEntry{
		name:    filepath.Base(filepath.Clean(path)),
		size:    size,
		mode:    0o644,
		modTime: atime,
		atime:   atime,
	})
}

// AddSymlink adds a symlink entry. Its size is never counted by the sweeper.
func (m *MockFileSystem) AddSymlink(path string, size int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addParents(path)
	m.addEntry(path, &mockEntry{
		name: filepath.Base(filepath.Clean(path)),
		size: size,
		mode: os.ModeSymlink | 0o777,
	})
}

// FailList makes ReadDir on the given path return a permission error.
func (m *MockFileSystem) FailList(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErr[filepath.Clean(path)] = &os.PathError{Op: "readdir", Path: path, Err: os.ErrPermission}
}

// FailStat makes Lstat on the given path return a permission error.
func (m *MockFileSystem) FailStat(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statErr[filepath.Clean(path)] = &os.PathError{Op: "lstat", Path: path, Err: os.ErrPermission}
}

// FailRemove makes RemoveAll on the given path return a permission error.
func (m *MockFileSystem) FailRemove(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeErr[filepath.Clean(path)] = &os.PathError{Op: "removeall", Path: path, Err: os.ErrPermission}
}

// Removed returns the paths successfully removed, in removal order.
func (m *MockFileSystem) Removed() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.removed))
	copy(out, m.removed)

	return out
}

// Exists reports whether the given path is present in the mock filesystem.
func (m *MockFileSystem) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[filepath.Clean(path)]

	return ok
}

// Join joins path elements using the OS path separator.
func (m *MockFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Lstat returns file information for the named entry.
func (m *MockFileSystem) Lstat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cleaned := filepath.Clean(name)
	if err, ok := m.statErr[cleaned]; ok {
		return nil, err
	}

	entry, ok := m.entries[cleaned]
	if !ok {
		return nil, &os.PathError{Op: "lstat", Path: name, Err: os.ErrNotExist}
	}

	return entry.info(), nil
}

// ReadDir returns the direct children of the named directory, sorted by name.
func (m *MockFileSystem) ReadDir(dirname string) ([]os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cleaned := filepath.Clean(dirname)
	if err, ok := m.listErr[cleaned]; ok {
		return nil, err
	}

	entry, ok := m.entries[cleaned]
	if !ok {
		return nil, &os.PathError{Op: "readdir", Path: dirname, Err: os.ErrNotExist}
	}
	if !entry.mode.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dirname)
	}

	var infos []os.FileInfo
	for path, child := range m.entries {
		if filepath.Dir(path) == cleaned && path != cleaned {
			infos = append(infos, child.info())
		}
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	return infos, nil
}

// RemoveAll removes the named entry and everything beneath it.
// Like os.RemoveAll, removing a nonexistent path is not an error.
func (m *MockFileSystem) RemoveAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cleaned := filepath.Clean(path)
	if err, ok := m.removeErr[cleaned]; ok {
		return err
	}

	if _, ok := m.entries[cleaned]; !ok {
		return nil
	}

	prefix := cleaned + string(filepath.Separator)
	for candidate := range m.entries {
		if candidate == cleaned || len(candidate) > len(prefix) && candidate[:len(prefix)] == prefix {
			delete(m.entries, candidate)
		}
	}
	m.removed = append(m.removed, cleaned)

	return nil
}

// addEntry stores an entry under its cleaned path. Caller must hold mu.
func (m *MockFileSystem) addEntry(path string, entry *mockEntry) {
	m.entries[filepath.Clean(path)] = entry
}

// addParents creates directory entries for all missing ancestors of path.
// Caller must hold mu.
func (m *MockFileSystem) addParents(path string) {
	parent := filepath.Dir(filepath.Clean(path))
	for parent != "." && parent != string(filepath.Separator) {
		if _, ok := m.entries[parent]; ok {
			break
		}
		m.entries[parent] = &mockEntry{
			name: filepath.Base(parent),
			mode: os.ModeDir | 0o755,
		}
		parent = filepath.Dir(parent)
	}
}

func (e *mockEntry) info() os.FileInfo {
	return &mockFileInfo{
		name:    e.name,
		size:    e.size,
		mode:    e.mode,
		modTime: e.modTime,
		atime:   e.atime,
	}
}
