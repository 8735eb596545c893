package screens

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/venv-sweep/internal/config"
	"github.com/joe/venv-sweep/internal/sweeper"
	"github.com/joe/venv-sweep/internal/tui/shared"
	"github.com/joe/venv-sweep/pkg/errors"
)

// SummaryScreen displays the final results
type SummaryScreen struct {
	config     *config.Config
	finalState string // "complete", "cancelled", "declined", "error"
	outcome    *sweeper.DeletionOutcome
	err        error
	enricher   errors.Enricher
}

// NewSummaryScreen creates a new summary screen
func NewSummaryScreen(cfg *config.Config, finalState string, outcome *sweeper.DeletionOutcome, err error) *SummaryScreen {
	return &SummaryScreen{
		config:     cfg,
		finalState: finalState,
		outcome:    outcome,
		err:        err,
		enricher:   errors.NewEnricher(),
	}
}

// Init implements tea.Model
func (s SummaryScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case shared.KeyCtrlC, "q", "esc", "enter":
		return s, tea.Quit
	}

	return s, nil
}

// View implements tea.Model
func (s SummaryScreen) View() string {
	switch s.finalState {
	case shared.StateComplete:
		return s.renderCompleteView()
	case shared.StateCancelled:
		return s.renderCancelledView()
	case shared.StateDeclined:
		return s.renderDeclinedView()
	case shared.StateError:
		return s.renderErrorView()
	default:
		return shared.RenderBox("Unknown state")
	}
}

func (s SummaryScreen) renderCancelledView() string {
	var builder strings.Builder

	builder.WriteString(shared.RenderWarning("Analysis interrupted"))
	builder.WriteString("\n\n")
	builder.WriteString("The scan was cancelled. No folders were deleted.\n\n")
	builder.WriteString(shared.RenderDim("Press q to quit"))

	return builder.String()
}

func (s SummaryScreen) renderCompleteView() string {
	var builder strings.Builder

	builder.WriteString(shared.RenderTitle("Deletion Summary"))
	builder.WriteString("\n\n")

	builder.WriteString(shared.RenderLabel("Successfully deleted: "))
	builder.WriteString(fmt.Sprintf("%d folders\n", s.outcome.DeletedCount))

	builder.WriteString(shared.RenderLabel("Failed to delete: "))
	builder.WriteString(fmt.Sprintf("%d folders\n", s.outcome.FailedCount))

	builder.WriteString(shared.RenderLabel("Space freed: "))
	builder.WriteString(shared.FormatBytes(s.outcome.FreedBytes))
	builder.WriteString("\n")

	if s.outcome.FailedCount > 0 {
		builder.WriteString("\n")
		builder.WriteString(s.renderFailures())
	}

	builder.WriteString("\n")
	builder.WriteString(shared.RenderDim("Press q to quit"))

	return builder.String()
}

func (s SummaryScreen) renderDeclinedView() string {
	var builder strings.Builder

	builder.WriteString(shared.RenderTitle("Deletion cancelled"))
	builder.WriteString("\n\n")
	builder.WriteString("No folders were deleted.\n\n")
	builder.WriteString(shared.RenderDim("Press q to quit"))

	return builder.String()
}

func (s SummaryScreen) renderErrorView() string {
	var builder strings.Builder

	builder.WriteString(shared.RenderError("Error during analysis"))
	builder.WriteString("\n\n")

	if s.err != nil {
		builder.WriteString(s.err.Error())
		builder.WriteString("\n")

		enriched := s.enricher.Enrich(s.err, "")
		if suggestions := errors.FormatSuggestions(enriched); suggestions != "" {
			builder.WriteString("\nTry these solutions:\n")
			builder.WriteString(suggestions)
			builder.WriteString("\n")
		}
	}

	builder.WriteString("\n")
	builder.WriteString(shared.RenderDim("Press q to quit"))

	return builder.String()
}

// renderFailures lists each failed folder with actionable suggestions for
// the first failure (the rest usually share the same cause).
func (s SummaryScreen) renderFailures() string {
	var builder strings.Builder

	paths := make([]string, 0, len(s.outcome.Errors))
	for path := range s.outcome.Errors {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		builder.WriteString(shared.RenderError("✗ "))
		builder.WriteString(fmt.Sprintf("%s - %v\n",
			shared.RelativePath(s.config.RootPath, path),
			s.outcome.Errors[path]))
	}

	if len(paths) > 0 {
		first := paths[0]
		enriched := s.enricher.Enrich(s.outcome.Errors[first], first)
		if suggestions := errors.FormatSuggestions(enriched); suggestions != "" {
			builder.WriteString("\nTry these solutions:\n")
			builder.WriteString(suggestions)
			builder.WriteString("\n")
		}
	}

	return builder.String()
}
