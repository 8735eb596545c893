package sweeper

import (
	"path/filepath"
	"time"

	"github.com/kr/fs"

	"github.com/joe/venv-sweep/pkg/filesystem"
)

// unixEpoch is the default last-access value when every probe fails.
// Downstream it reads as "very stale".
var unixEpoch = time.Unix(0, 0).UTC()

// accessProbes are the well-known entries, relative to a venv root, whose
// access times approximate when the environment was last used.
var accessProbes = []string{
	"Scripts",
	"bin",
	"pyvenv.cfg",
	"activate",
	"activate.bat",
	"activate.ps1",
	"python.exe",
	"Scripts/python.exe",
	"bin/python",
}

// DirectorySize returns the total size in bytes of every regular file under
// dir. Symlinks and special files contribute nothing and are not followed.
// Subtrees that cannot be read are skipped, never surfaced as errors.
func (e *Engine) DirectorySize(dir string) int64 {
	var total int64

	walker := fs.WalkFS(dir, e.FS)
	for walker.Step() {
		if walker.Err() != nil {
			continue
		}

		if info := walker.Stat(); info.Mode().IsRegular() {
			total += info.Size()
		}
	}

	return total
}

// LastAccessTime returns the most recent access time among the folder itself
// and its well-known marker entries. Probes that fail are skipped; if every
// probe fails the Unix epoch is returned.
func (e *Engine) LastAccessTime(dir string) time.Time {
	latest := unixEpoch

	probe := func(path string) {
		info, err := e.FS.Lstat(path)
		if err != nil {
			return
		}

		if atime := filesystem.AccessTime(info); atime.After(latest) {
			latest = atime
		}
	}

	probe(dir)
	for _, marker := range accessProbes {
		probe(e.FS.Join(dir, filepath.FromSlash(marker)))
	}

	return latest
}
