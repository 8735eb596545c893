package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/venv-sweep/internal/config"
	"github.com/joe/venv-sweep/internal/sweeper"
	"github.com/joe/venv-sweep/internal/tui/shared"
)

// confirmPhrase must be typed, verbatim, before any deletion runs.
const confirmPhrase = "DELETE"

// ConfirmScreen asks for approval of an exact deletion selection.
// Two gates: a y/N question, then the typed confirmation phrase. Anything
// other than full approval backs out to the results screen.
type ConfirmScreen struct {
	config    *config.Config
	selection []sweeper.FolderMetrics
	mode      config.DeleteMode
	input     textinput.Model
	typing    bool
}

// NewConfirmScreen creates a new confirmation screen for the given selection.
func NewConfirmScreen(cfg *config.Config, selection []sweeper.FolderMetrics, mode config.DeleteMode) *ConfirmScreen {
	input := textinput.New()
	input.Placeholder = confirmPhrase
	input.Prompt = shared.PromptArrow
	input.CharLimit = len(confirmPhrase)

	return &ConfirmScreen{
		config:    cfg,
		selection: selection,
		mode:      mode,
		input:     input,
	}
}

// Init implements tea.Model
func (s ConfirmScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s ConfirmScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if keyMsg.Type == tea.KeyCtrlC {
		return s, tea.Quit
	}

	if s.typing {
		return s.handleTypingKey(keyMsg)
	}

	return s.handleQuestionKey(keyMsg)
}

// View implements tea.Model
func (s ConfirmScreen) View() string {
	var builder strings.Builder

	builder.WriteString(shared.RenderTitle("Cleanup Option"))
	builder.WriteString("\n\n")

	builder.WriteString(fmt.Sprintf("Delete %s?\n", s.describeSelection()))
	builder.WriteString(shared.RenderLabel("This would free "))
	builder.WriteString(shared.FormatBytes(s.selectionBytes()))
	builder.WriteString(shared.RenderLabel(" of disk space."))
	builder.WriteString("\n\n")

	for i, folder := range s.selection {
		builder.WriteString(fmt.Sprintf("%d. %s (%s)\n",
			i+1,
			shared.RelativePath(s.config.RootPath, folder.Path),
			shared.FormatBytes(folder.SizeBytes)))
	}

	builder.WriteString("\n")

	if s.typing {
		builder.WriteString(shared.RenderWarning("WARNING: This action cannot be undone!"))
		builder.WriteString("\n")
		builder.WriteString(fmt.Sprintf("Type '%s' to confirm deletion:\n", confirmPhrase))
		builder.WriteString(s.input.View())
		builder.WriteString("\n\n")
		builder.WriteString(shared.RenderDim("Enter to confirm, Esc to cancel"))
	} else {
		builder.WriteString("Delete these folders? ")
		builder.WriteString(shared.RenderDim("(y/N)"))
	}

	return builder.String()
}

func (s ConfirmScreen) describeSelection() string {
	if s.mode == config.DeleteUnused {
		return fmt.Sprintf("all %d venv folders unused for over %d days",
			len(s.selection), s.config.UnusedDays)
	}

	return fmt.Sprintf("the top %d largest venv folders", len(s.selection))
}

func (s ConfirmScreen) handleQuestionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		s.typing = true

		return s, s.input.Focus()

	default:
		// Anything but an explicit yes declines, like the classic (y/N) prompt
		return s, func() tea.Msg {
			return shared.BackToResultsMsg{}
		}
	}
}

func (s ConfirmScreen) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if s.input.Value() != confirmPhrase {
			return s, func() tea.Msg {
				return shared.BackToResultsMsg{}
			}
		}

		selection := s.selection

		return s, func() tea.Msg {
			return shared.ConfirmDeleteMsg{Selection: selection}
		}

	case tea.KeyEsc:
		return s, func() tea.Msg {
			return shared.BackToResultsMsg{}
		}

	default:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)

		return s, cmd
	}
}

func (s ConfirmScreen) selectionBytes() int64 {
	var total int64
	for _, folder := range s.selection {
		total += folder.SizeBytes
	}

	return total
}
