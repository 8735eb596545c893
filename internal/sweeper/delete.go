package sweeper

import (
	"fmt"
	"os"
)

// DeleteFolders removes each folder in the selection and reports the
// per-folder outcome. One failure never aborts the batch.
//
// The executor performs no confirmation of its own: it trusts that the
// caller obtained explicit approval for exactly this selection, and it never
// expands or re-derives it. A folder already gone at deletion time counts as
// a failure, not a silent success.
func (e *Engine) DeleteFolders(selection []FolderMetrics) *DeletionOutcome {
	outcome := &DeletionOutcome{
		Errors: make(map[string]error),
	}

	e.emit(DeleteStarted{Count: len(selection)})

	for _, folder := range selection {
		if _, err := e.FS.Lstat(folder.Path); err != nil {
			e.recordFailure(outcome, folder.Path, fmt.Errorf("folder no longer exists: %w", os.ErrNotExist))

			continue
		}

		if err := e.FS.RemoveAll(folder.Path); err != nil {
			e.recordFailure(outcome, folder.Path, err)

			continue
		}

		outcome.DeletedCount++
		outcome.FreedBytes += folder.SizeBytes
		e.emit(FolderDeleted{Path: folder.Path, Size: folder.SizeBytes})
	}

	e.emit(DeleteComplete{Outcome: outcome})

	return outcome
}

func (e *Engine) recordFailure(outcome *DeletionOutcome, path string, err error) {
	outcome.FailedCount++
	outcome.Errors[path] = err
	e.emit(DeleteFailed{Path: path, Err: err})
}
