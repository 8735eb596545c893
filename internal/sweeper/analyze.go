package sweeper

import (
	"sort"
	"time"
)

// hoursPerDay converts the day-based staleness threshold to a duration.
const hoursPerDay = 24

// Analyze measures every candidate and builds the report. Candidates that
// cannot be stat'ed at all (vanished, unreadable) are dropped without
// failing the run. Last-access probing only happens when a staleness
// threshold was configured.
func (e *Engine) Analyze(candidates []Candidate) (*Report, error) {
	measured := make([]FolderMetrics, 0, len(candidates))

	for i, candidate := range candidates {
		if err := e.checkCancellation(); err != nil {
			return nil, err
		}

		if _, err := e.FS.Lstat(candidate.Path); err != nil {
			e.emit(MeasureProgress{Done: i + 1, Total: len(candidates)})

			continue
		}

		metrics := FolderMetrics{
			Path:      candidate.Path,
			SizeBytes: e.DirectorySize(candidate.Path),
		}
		if e.UnusedDays >= 0 {
			metrics.LastAccess = e.LastAccessTime(candidate.Path)
		}

		measured = append(measured, metrics)
		e.emit(MeasureProgress{Done: i + 1, Total: len(candidates)})
	}

	report := &Report{
		RankedBySize: make([]FolderMetrics, len(measured)),
	}

	// Stable sorts keep traversal order as the tie-break.
	copy(report.RankedBySize, measured)
	sort.SliceStable(report.RankedBySize, func(i, j int) bool {
		return report.RankedBySize[i].SizeBytes > report.RankedBySize[j].SizeBytes
	})

	report.TotalCount = len(report.RankedBySize)
	for _, metrics := range report.RankedBySize {
		report.TotalSizeBytes += metrics.SizeBytes
	}

	if e.UnusedDays >= 0 {
		cutoff := e.TimeProvider.Now().Add(-time.Duration(e.UnusedDays) * hoursPerDay * time.Hour)
		for _, metrics := range measured {
			if metrics.LastAccess.Before(cutoff) {
				report.UnusedSet = append(report.UnusedSet, metrics)
			}
		}

		sort.SliceStable(report.UnusedSet, func(i, j int) bool {
			return report.UnusedSet[i].LastAccess.Before(report.UnusedSet[j].LastAccess)
		})

		report.UnusedCount = len(report.UnusedSet)
		for _, metrics := range report.UnusedSet {
			report.UnusedSizeBytes += metrics.SizeBytes
		}
	}

	return report, nil
}
