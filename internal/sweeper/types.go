package sweeper

import "time"

// Candidate is a directory that the classifier matched during traversal.
// Only the flat set of matches is retained; tree structure is discarded.
type Candidate struct {
	Path string
}

// FolderMetrics holds the measured size and last-access signal for one
// candidate. Recomputed on every run, never cached.
type FolderMetrics struct {
	Path       string
	SizeBytes  int64
	LastAccess time.Time
}

// Report is the result of one analysis run. It is built once and must not
// be mutated afterwards.
type Report struct {
	TotalCount     int
	TotalSizeBytes int64

	// RankedBySize holds every measured folder, largest first.
	// Ties keep traversal order.
	RankedBySize []FolderMetrics

	// UnusedSet holds the folders whose last access predates the staleness
	// cutoff, oldest first. Empty when no threshold was supplied.
	UnusedSet       []FolderMetrics
	UnusedCount     int
	UnusedSizeBytes int64
}

// TopLargest returns a copy of the first n entries of RankedBySize.
// It returns fewer entries when the report holds fewer folders.
func (r *Report) TopLargest(n int) []FolderMetrics {
	if n > len(r.RankedBySize) {
		n = len(r.RankedBySize)
	}
	if n < 0 {
		n = 0
	}

	out := make([]FolderMetrics, n)
	copy(out, r.RankedBySize[:n])

	return out
}

// DeletionOutcome records what happened to each folder in a deletion batch.
// DeletedCount + FailedCount always equals the size of the selection.
type DeletionOutcome struct {
	DeletedCount int
	FailedCount  int
	FreedBytes   int64

	// Errors maps each failed folder's path to the reason it failed.
	Errors map[string]error
}
