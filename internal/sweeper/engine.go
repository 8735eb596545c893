// Package sweeper locates Python virtual environment folders under a root
// directory, measures their disk usage and last-access recency, and deletes
// an explicitly approved selection.
//
// Both halves of the job are heuristics. A folder can look like a venv
// without being one (see IsVenvDir), and access times are approximate: some
// filesystems never record them, and probing a file can itself update it.
// Each run is a best-effort snapshot, not a transactional guarantee.
package sweeper

import (
	"errors"
	"sync"

	"github.com/joe/venv-sweep/internal/config"
	"github.com/joe/venv-sweep/pkg/filesystem"
)

// Exported variables.
var (
	// ErrScanCancelled is returned when the scan is cancelled mid-flight.
	ErrScanCancelled = errors.New("scan cancelled")
)

// Engine runs the scan/analyze/delete pipeline against a filesystem.
// The read phases never modify anything; only DeleteFolders is destructive,
// and it acts solely on the selection it is handed.
type Engine struct {
	Root         string
	MaxDepth     int // -1 = unlimited
	UnusedDays   int // -1 = staleness detection disabled
	FS           filesystem.FileSystem // filesystem (for dependency injection)
	TimeProvider TimeProvider          // time source (for dependency injection)

	filter     *ExcludeFilter
	emitter    EventEmitter // event emitter for TUI communication (optional)
	cancelChan chan struct{}
	cancelOnce sync.Once
}

// NewEngine creates an engine for the given configuration, backed by the
// real filesystem and the system clock.
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		Root:         cfg.RootPath,
		MaxDepth:     cfg.MaxDepth,
		UnusedDays:   cfg.UnusedDays,
		FS:           filesystem.NewRealFileSystem(),
		TimeProvider: &RealTimeProvider{},
		filter:       NewExcludeFilter(cfg.Exclude),
		cancelChan:   make(chan struct{}),
	}
}

// SetEventEmitter sets the event emitter for TUI communication.
// The emitter is optional - if nil, no events will be emitted.
func (e *Engine) SetEventEmitter(emitter EventEmitter) {
	e.emitter = emitter
}

// SetExcludePattern replaces the traversal exclude pattern.
func (e *Engine) SetExcludePattern(pattern string) {
	e.filter = NewExcludeFilter(pattern)
}

// emit sends an event if an emitter is configured.
// Safe to call even when emitter is nil.
func (e *Engine) emit(event Event) {
	if e.emitter != nil {
		e.emitter.Emit(event)
	}
}

// Cancel signals the engine to stop between directory visits.
// Safe to call multiple times and from any goroutine.
func (e *Engine) Cancel() {
	e.cancelOnce.Do(func() {
		close(e.cancelChan)
	})
}

// checkCancellation returns ErrScanCancelled if Cancel has been called.
func (e *Engine) checkCancellation() error {
	select {
	case <-e.cancelChan:
		return ErrScanCancelled
	default:
		return nil
	}
}

// Scan traverses the root, measures every candidate, and builds the report.
// The filesystem is left untouched; cancellation simply stops mid-phase.
func (e *Engine) Scan() (*Report, error) {
	e.emit(ScanStarted{Root: e.Root})

	candidates, err := e.FindVenvDirs()
	if err != nil {
		return nil, err
	}

	e.emit(ScanComplete{Count: len(candidates)})

	report, err := e.Analyze(candidates)
	if err != nil {
		return nil, err
	}

	e.emit(AnalysisComplete{Report: report})

	return report, nil
}
