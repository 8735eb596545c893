package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/venv-sweep/internal/config"
	"github.com/joe/venv-sweep/internal/sweeper"
	"github.com/joe/venv-sweep/internal/tui/shared"
)

// Table column widths.
const (
	rankColumnWidth = 4
	pathColumnWidth = 48
	sizeColumnWidth = 10
	ageColumnWidth  = 14
)

// ResultsScreen displays the analysis report and offers the two deletion
// selections: top largest by size, or the full unused set.
type ResultsScreen struct {
	config *config.Config
	engine *sweeper.Engine
	report *sweeper.Report
	table  table.Model
}

// NewResultsScreen creates a new results screen from a finished report.
func NewResultsScreen(cfg *config.Config, engine *sweeper.Engine, report *sweeper.Report) *ResultsScreen {
	screen := &ResultsScreen{
		config: cfg,
		engine: engine,
		report: report,
	}
	screen.table = screen.buildTable()

	return screen
}

// Init implements tea.Model.
// When a deletion mode was passed on the command line, the confirmation is
// offered immediately, mirroring the non-interactive flag flow.
func (s ResultsScreen) Init() tea.Cmd {
	if s.config.Delete == config.DeleteNone || s.report.TotalCount == 0 {
		return nil
	}

	selection := s.buildSelection(s.config.Delete)
	if len(selection) == 0 {
		return nil
	}

	mode := s.config.Delete

	return func() tea.Msg {
		return shared.TransitionToConfirmMsg{Selection: selection, Mode: mode}
	}
}

// Update implements tea.Model
func (s ResultsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case shared.KeyCtrlC, "q", "esc":
		return s, tea.Quit

	case "d":
		selection := s.buildSelection(config.DeleteTopLargest)
		if len(selection) == 0 {
			return s, nil
		}

		return s, func() tea.Msg {
			return shared.TransitionToConfirmMsg{Selection: selection, Mode: config.DeleteTopLargest}
		}

	case "u":
		selection := s.buildSelection(config.DeleteUnused)
		if len(selection) == 0 {
			return s, nil
		}

		return s, func() tea.Msg {
			return shared.TransitionToConfirmMsg{Selection: selection, Mode: config.DeleteUnused}
		}
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)

	return s, cmd
}

// View implements tea.Model
func (s ResultsScreen) View() string {
	var builder strings.Builder

	builder.WriteString(shared.RenderTitle("Virtual Environment Analysis Results"))
	builder.WriteString("\n\n")

	builder.WriteString(shared.RenderLabel("Root directory: "))
	builder.WriteString(s.config.RootPath)
	builder.WriteString("\n")

	builder.WriteString(shared.RenderLabel("Total venv folders found: "))
	builder.WriteString(fmt.Sprintf("%d", s.report.TotalCount))
	builder.WriteString("\n")

	builder.WriteString(shared.RenderLabel("Total size: "))
	builder.WriteString(shared.FormatBytes(s.report.TotalSizeBytes))
	builder.WriteString("\n")

	if s.staleness() {
		builder.WriteString(shared.RenderLabel(fmt.Sprintf("Unused (>%d days): ", s.config.UnusedDays)))
		builder.WriteString(fmt.Sprintf("%d folders, %s",
			s.report.UnusedCount, shared.FormatBytes(s.report.UnusedSizeBytes)))
		builder.WriteString("\n")
	}

	if s.report.TotalCount == 0 {
		builder.WriteString("\n")
		builder.WriteString("No virtual environment folders found.")
		builder.WriteString("\n\n")
		builder.WriteString(shared.RenderDim("Press q to quit"))

		return builder.String()
	}

	builder.WriteString("\n")
	if s.config.Verbose {
		builder.WriteString(shared.RenderLabel("All venv folders by size:"))
	} else {
		builder.WriteString(shared.RenderLabel("Top 5 largest venv folders:"))
	}
	builder.WriteString("\n")
	builder.WriteString(s.table.View())
	builder.WriteString("\n\n")

	builder.WriteString(shared.RenderDim(s.helpLine()))

	return builder.String()
}

// buildSelection returns the folder list a deletion mode offers.
// The selection is a copy; the report is never mutated.
func (s ResultsScreen) buildSelection(mode config.DeleteMode) []sweeper.FolderMetrics {
	switch mode {
	case config.DeleteTopLargest:
		return s.report.TopLargest(config.TopLargestCount)

	case config.DeleteUnused:
		if !s.staleness() {
			return nil
		}

		selection := make([]sweeper.FolderMetrics, len(s.report.UnusedSet))
		copy(selection, s.report.UnusedSet)

		return selection

	case config.DeleteNone:
		return nil

	default:
		return nil
	}
}

func (s ResultsScreen) buildTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: rankColumnWidth},
		{Title: "Folder", Width: pathColumnWidth},
		{Title: "Size", Width: sizeColumnWidth},
	}
	if s.staleness() {
		columns = append(columns, table.Column{Title: "Last used", Width: ageColumnWidth})
	}

	ranked := s.report.RankedBySize
	if !s.config.Verbose && len(ranked) > config.TopLargestCount {
		ranked = ranked[:config.TopLargestCount]
	}

	now := s.engine.TimeProvider.Now()
	rows := make([]table.Row, 0, len(ranked))
	for i, folder := range ranked {
		row := table.Row{
			fmt.Sprintf("%d", i+1),
			shared.RelativePath(s.config.RootPath, folder.Path),
			shared.FormatBytes(folder.SizeBytes),
		}
		if s.staleness() {
			row = append(row, shared.FormatAge(folder.LastAccess, now))
		}
		rows = append(rows, row)
	}

	height := len(rows)
	if height > shared.MaxVisibleRows {
		height = shared.MaxVisibleRows
	}

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
}

func (s ResultsScreen) helpLine() string {
	parts := []string{"d: delete top 5 largest"}
	if s.staleness() && s.report.UnusedCount > 0 {
		parts = append(parts, "u: delete unused")
	}
	parts = append(parts, "↑/↓: scroll", "q: quit")

	return strings.Join(parts, " • ")
}

// staleness reports whether an unused-age threshold was supplied.
func (s ResultsScreen) staleness() bool {
	return s.config.UnusedDays >= 0
}
