// Package tui wires the sweeper engine to a bubbletea screen flow:
// scan, results, confirmation, delete, summary.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/venv-sweep/internal/config"
	"github.com/joe/venv-sweep/internal/sweeper"
	"github.com/joe/venv-sweep/internal/tui/screens"
	"github.com/joe/venv-sweep/internal/tui/shared"
)

// AppModel is the top-level model that routes transition messages between screens
type AppModel struct {
	config        *config.Config
	engine        *sweeper.Engine
	bridge        *shared.EventBridge
	report        *sweeper.Report
	currentScreen tea.Model
	width         int
	height        int
}

// NewAppModel creates a new app model starting at the scan screen
func NewAppModel(cfg *config.Config) *AppModel {
	engine := sweeper.NewEngine(cfg)
	bridge := shared.NewEventBridge()
	engine.SetEventEmitter(bridge)

	return &AppModel{
		config:        cfg,
		engine:        engine,
		bridge:        bridge,
		currentScreen: *screens.NewScanScreen(cfg, engine, bridge),
	}
}

// CurrentScreen returns the current screen (for testing)
func (a AppModel) CurrentScreen() tea.Model {
	return a.currentScreen
}

// Engine returns the underlying engine (for testing)
func (a AppModel) Engine() *sweeper.Engine {
	return a.engine
}

// Init implements tea.Model
func (a AppModel) Init() tea.Cmd {
	return a.currentScreen.Init()
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Capture window size
	if windowMsg, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = windowMsg.Width
		a.height = windowMsg.Height
	}

	// Handle screen transitions
	switch msg := msg.(type) {
	case shared.TransitionToResultsMsg:
		a.report = msg.Report
		a.currentScreen = *screens.NewResultsScreen(a.config, a.engine, msg.Report)

		return a, a.currentScreen.Init()

	case shared.TransitionToConfirmMsg:
		a.currentScreen = *screens.NewConfirmScreen(a.config, msg.Selection, msg.Mode)

		return a, a.currentScreen.Init()

	case shared.ConfirmDeleteMsg:
		a.currentScreen = *screens.NewDeleteScreen(a.config, a.engine, a.bridge, msg.Selection)

		return a, a.currentScreen.Init()

	case shared.BackToResultsMsg:
		return a.handleDecline()

	case shared.TransitionToSummaryMsg:
		a.currentScreen = *screens.NewSummaryScreen(a.config, msg.FinalState, msg.Outcome, msg.Err)

		return a, a.currentScreen.Init()
	}

	// Delegate everything else to the current screen
	var cmd tea.Cmd
	a.currentScreen, cmd = a.currentScreen.Update(msg)

	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	return a.currentScreen.View()
}

// handleDecline routes a declined confirmation. A flag-driven deletion run
// ends at the summary (like the original CLI); an interactive one returns
// to the results screen.
func (a AppModel) handleDecline() (tea.Model, tea.Cmd) {
	if a.config.Delete != config.DeleteNone {
		a.currentScreen = *screens.NewSummaryScreen(a.config, shared.StateDeclined, nil, nil)

		return a, a.currentScreen.Init()
	}

	if a.report != nil {
		a.currentScreen = *screens.NewResultsScreen(a.config, a.engine, a.report)
	}

	return a, nil
}
