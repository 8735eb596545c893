package sweeper

import (
	"path/filepath"

	"github.com/joe/venv-sweep/pkg/filesystem"
)

// venvNames are folder names that identify a virtual environment outright.
// Matching is case-sensitive.
var venvNames = map[string]bool{
	"venv":        true,
	"env":         true,
	".venv":       true,
	".env":        true,
	"virtualenv":  true,
	"virtual_env": true,
	"python_env":  true,
	"pyenv":       true,
}

// markerEntries are files or folders whose presence directly inside a
// directory marks it as a virtual environment. Existence is the only check;
// contents are never inspected.
var markerEntries = []string{
	"Scripts", // Windows
	"bin",     // Unix
	"pyvenv.cfg",
	"activate",
	"activate.bat",
	"activate.ps1",
}

// IsVenvDir reports whether dir looks like a virtual environment root.
// The caller guarantees dir exists and is a directory.
//
// This is a heuristic with known false positives: a project directory named
// "env", or any directory carrying an unrelated bin/ subfolder, will match.
// Any error probing a marker entry is treated as absence.
func IsVenvDir(fsys filesystem.FileSystem, dir string) bool {
	if venvNames[filepath.Base(dir)] {
		return true
	}

	for _, marker := range markerEntries {
		if _, err := fsys.Lstat(fsys.Join(dir, marker)); err == nil {
			return true
		}
	}

	return false
}
