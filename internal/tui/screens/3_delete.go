package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joe/venv-sweep/internal/config"
	"github.com/joe/venv-sweep/internal/sweeper"
	"github.com/joe/venv-sweep/internal/tui/shared"
)

// DeleteScreen runs the deletion executor over the approved selection and
// shows one line per folder as it is processed.
type DeleteScreen struct {
	config    *config.Config
	engine    *sweeper.Engine
	bridge    *shared.EventBridge
	selection []sweeper.FolderMetrics
	spinner   spinner.Model
	lines     []string
	processed int
}

// DeleteFinishedMsg is sent when the whole selection has been processed.
type DeleteFinishedMsg struct {
	Outcome *sweeper.DeletionOutcome
}

// NewDeleteScreen creates a new delete screen for an approved selection.
func NewDeleteScreen(cfg *config.Config, engine *sweeper.Engine, bridge *shared.EventBridge, selection []sweeper.FolderMetrics) *DeleteScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(shared.AccentColor())

	return &DeleteScreen{
		config:    cfg,
		engine:    engine,
		bridge:    bridge,
		selection: selection,
		spinner:   s,
	}
}

// Init implements tea.Model
func (s DeleteScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.startDeleteCmd(), s.bridge.ListenCmd())
}

// Update implements tea.Model
func (s DeleteScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)

		return s, cmd

	case shared.EngineEventMsg:
		return s.handleEngineEvent(msg)

	case DeleteFinishedMsg:
		outcome := msg.Outcome

		return s, func() tea.Msg {
			return shared.TransitionToSummaryMsg{FinalState: shared.StateComplete, Outcome: outcome}
		}

	case tea.KeyMsg:
		// Emergency exit only; individual deletions are not interruptible
		if msg.Type == tea.KeyCtrlC {
			return s, tea.Quit
		}

		return s, nil
	}

	return s, nil
}

// View implements tea.Model
func (s DeleteScreen) View() string {
	var builder strings.Builder

	builder.WriteString(shared.RenderTitle(fmt.Sprintf("Deleting %d venv folders", len(s.selection))))
	builder.WriteString("\n\n")

	for _, line := range s.lines {
		builder.WriteString(line)
		builder.WriteString("\n")
	}

	if s.processed < len(s.selection) {
		builder.WriteString(fmt.Sprintf("%s %d/%d\n", s.spinner.View(), s.processed, len(s.selection)))
	}

	return builder.String()
}

func (s DeleteScreen) handleEngineEvent(msg shared.EngineEventMsg) (tea.Model, tea.Cmd) {
	switch event := msg.Event.(type) {
	case sweeper.FolderDeleted:
		s.processed++
		s.lines = append(s.lines, shared.RenderSuccess("✓ Deleted: ")+
			fmt.Sprintf("%s (%s)",
				shared.RelativePath(s.config.RootPath, event.Path),
				shared.FormatBytes(event.Size)))

	case sweeper.DeleteFailed:
		s.processed++
		s.lines = append(s.lines, shared.RenderError("✗ Failed to delete: ")+
			fmt.Sprintf("%s - %v",
				shared.RelativePath(s.config.RootPath, event.Path),
				event.Err))
	}

	return s, s.bridge.ListenCmd()
}

func (s DeleteScreen) startDeleteCmd() tea.Cmd {
	return func() tea.Msg {
		outcome := s.engine.DeleteFolders(s.selection)

		return DeleteFinishedMsg{Outcome: outcome}
	}
}
