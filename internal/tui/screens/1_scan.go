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

// ScanScreen runs the scan/measure phases and shows live progress.
type ScanScreen struct {
	config     *config.Config
	engine     *sweeper.Engine
	bridge     *shared.EventBridge
	spinner    spinner.Model
	found      int
	measured   int
	total      int
	measuring  bool
	cancelling bool
}

// ScanFinishedMsg is sent when the engine's scan returns.
type ScanFinishedMsg struct {
	Report *sweeper.Report
	Err    error
}

// NewScanScreen creates a new scan screen.
// The bridge must already be registered as the engine's event emitter.
func NewScanScreen(cfg *config.Config, engine *sweeper.Engine, bridge *shared.EventBridge) *ScanScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(shared.AccentColor())

	return &ScanScreen{
		config:  cfg,
		engine:  engine,
		bridge:  bridge,
		spinner: s,
	}
}

// Init implements tea.Model
func (s ScanScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.startScanCmd(), s.bridge.ListenCmd())
}

// Update implements tea.Model
func (s ScanScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)

		return s, cmd

	case shared.EngineEventMsg:
		return s.handleEngineEvent(msg)

	case ScanFinishedMsg:
		return s.handleScanFinished(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			s.engine.Cancel()
			s.cancelling = true
		}

		return s, nil
	}

	return s, nil
}

// View implements tea.Model
func (s ScanScreen) View() string {
	var builder strings.Builder

	builder.WriteString(shared.RenderTitle("Virtual Environment Analysis"))
	builder.WriteString("\n\n")

	if s.cancelling {
		builder.WriteString(shared.RenderWarning("Cancelling..."))
		builder.WriteString("\n")

		return builder.String()
	}

	if s.measuring {
		builder.WriteString(fmt.Sprintf("%s Measuring venv folders (%d/%d)\n",
			s.spinner.View(), s.measured, s.total))
	} else {
		builder.WriteString(fmt.Sprintf("%s Searching for venv folders in %s\n",
			s.spinner.View(), s.config.RootPath))
		builder.WriteString(shared.RenderLabel("Found: "))
		builder.WriteString(fmt.Sprintf("%d", s.found))
		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(shared.RenderDim("This may take a moment for large directories. Esc to cancel."))

	return builder.String()
}

func (s ScanScreen) handleEngineEvent(msg shared.EngineEventMsg) (tea.Model, tea.Cmd) {
	switch event := msg.Event.(type) {
	case sweeper.CandidateFound:
		s.found++
	case sweeper.ScanComplete:
		s.total = event.Count
	case sweeper.MeasureProgress:
		s.measuring = true
		s.measured = event.Done
		s.total = event.Total
	}

	// Keep listening for the next event
	return s, s.bridge.ListenCmd()
}

func (s ScanScreen) handleScanFinished(msg ScanFinishedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		state := shared.StateError
		if msg.Err == sweeper.ErrScanCancelled {
			state = shared.StateCancelled
		}

		return s, func() tea.Msg {
			return shared.TransitionToSummaryMsg{FinalState: state, Err: msg.Err}
		}
	}

	return s, func() tea.Msg {
		return shared.TransitionToResultsMsg{Report: msg.Report}
	}
}

func (s ScanScreen) startScanCmd() tea.Cmd {
	return func() tea.Msg {
		report, err := s.engine.Scan()
		if err == sweeper.ErrScanCancelled {
			return ScanFinishedMsg{Err: err}
		}

		return ScanFinishedMsg{Report: report, Err: err}
	}
}
