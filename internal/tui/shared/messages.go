package shared

import (
	"github.com/joe/venv-sweep/internal/config"
	"github.com/joe/venv-sweep/internal/sweeper"
)

// ============================================================================
// Transition Messages
// These messages trigger screen transitions and are handled by AppModel
// ============================================================================

// TransitionToResultsMsg is sent by ScanScreen when analysis completes
type TransitionToResultsMsg struct {
	Report *sweeper.Report
}

// TransitionToConfirmMsg is sent by ResultsScreen when the user picks a
// deletion selection. Selection is the exact list the user will approve;
// it is never re-derived downstream.
type TransitionToConfirmMsg struct {
	Selection []sweeper.FolderMetrics
	Mode      config.DeleteMode
}

// ConfirmDeleteMsg is sent by ConfirmScreen after the typed confirmation
type ConfirmDeleteMsg struct {
	Selection []sweeper.FolderMetrics
}

// BackToResultsMsg is sent when the user declines a confirmation
type BackToResultsMsg struct{}

// TransitionToSummaryMsg is sent when the run finishes, is cancelled, or errors
type TransitionToSummaryMsg struct {
	FinalState string // "complete", "cancelled", "declined", "error"
	Outcome    *sweeper.DeletionOutcome
	Err        error // only set if FinalState is "error"
}
