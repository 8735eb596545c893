package shared

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
)

// ============================================================================
// Formatting Functions
// These are used by multiple screens for consistent display
// ============================================================================

// FormatBytes formats bytes into human-readable format (e.g., "1.5 MiB")
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}

	return humanize.IBytes(uint64(bytes))
}

// FormatAge formats a last-access timestamp relative to now
// (e.g., "today", "yesterday", "42 days ago"). A zero or epoch timestamp
// renders as "unknown" - it means every access-time probe failed.
func FormatAge(lastAccess, now time.Time) string {
	if lastAccess.IsZero() || lastAccess.Unix() == 0 {
		return "unknown"
	}

	days := int(now.Sub(lastAccess).Hours() / 24)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

// RelativePath renders path relative to root for display, falling back to
// the full path when it is not beneath root.
func RelativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}

	return rel
}
