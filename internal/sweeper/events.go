package sweeper

// Event is the interface implemented by all sweeper engine events.
type Event interface {
	isEvent()
}

// EventEmitter is the interface for emitting events.
type EventEmitter interface {
	Emit(event Event)
}

// Scan phase events

// ScanStarted is emitted when traversal of the root directory begins.
type ScanStarted struct {
	Root string
}

func (ScanStarted) isEvent() {}

// CandidateFound is emitted when the traversal matches a venv folder.
type CandidateFound struct {
	Path string
}

func (CandidateFound) isEvent() {}

// ScanComplete is emitted when traversal finishes.
type ScanComplete struct {
	Count int
}

func (ScanComplete) isEvent() {}

// Measurement phase events

// MeasureProgress is emitted after each candidate's metrics are collected.
type MeasureProgress struct {
	Done  int
	Total int
}

func (MeasureProgress) isEvent() {}

// AnalysisComplete is emitted when the report has been built.
type AnalysisComplete struct {
	Report *Report
}

func (AnalysisComplete) isEvent() {}

// Deletion phase events

// DeleteStarted is emitted when deletion of an approved selection begins.
type DeleteStarted struct {
	Count int
}

func (DeleteStarted) isEvent() {}

// FolderDeleted is emitted when a folder has been removed.
type FolderDeleted struct {
	Path string
	Size int64
}

func (FolderDeleted) isEvent() {}

// DeleteFailed is emitted when a folder could not be removed.
type DeleteFailed struct {
	Path string
	Err  error
}

func (DeleteFailed) isEvent() {}

// DeleteComplete is emitted when the whole selection has been processed.
type DeleteComplete struct {
	Outcome *DeletionOutcome
}

func (DeleteComplete) isEvent() {}
