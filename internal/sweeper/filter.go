package sweeper

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ExcludeFilter skips directories during traversal using a glob pattern.
// Patterns are matched against the path relative to the scan root, with
// forward slashes on every platform.
type ExcludeFilter struct {
	pattern string
	isEmpty bool
}

// NewExcludeFilter creates a new ExcludeFilter with the given pattern.
// An empty pattern excludes nothing.
func NewExcludeFilter(pattern string) *ExcludeFilter {
	return &ExcludeFilter{
		pattern: pattern,
		isEmpty: pattern == "",
	}
}

// ShouldSkip returns true if the directory at the given relative path should
// be skipped entirely (neither classified nor descended into).
func (f *ExcludeFilter) ShouldSkip(relativePath string) bool {
	if f.isEmpty {
		return false
	}

	matched, err := doublestar.Match(f.pattern, filepath.ToSlash(relativePath))
	if err != nil {
		// Invalid patterns are rejected at config time; don't skip here.
		return false
	}

	return matched
}
