package shared

import "github.com/charmbracelet/lipgloss"

// Exported constants.
const (
	// DefaultPadding is the default padding for UI elements
	DefaultPadding = 2
	// MaxVisibleRows is the maximum number of table rows shown at once
	MaxVisibleRows = 15

	// KeyCtrlC is the key binding for cancellation
	KeyCtrlC = "ctrl+c"
	// PromptArrow is the arrow character used in prompts
	PromptArrow = "▶ "

	// Final states reported by the summary screen
	StateCancelled = "cancelled"
	StateComplete  = "complete"
	StateDeclined  = "declined"
	StateError     = "error"
)

// unexported color codes.
const (
	accentColorCode  = "205"
	dimColorCode     = "241"
	errorColorCode   = "196"
	successColorCode = "42"
	warningColorCode = "214"
)

func AccentColor() lipgloss.Color { return lipgloss.Color(accentColorCode) }

// BoxStyle returns the style for boxes with padding
func BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor()).
		Padding(1, DefaultPadding)
}

func DimColor() lipgloss.Color { return lipgloss.Color(dimColorCode) }

// DimStyle returns the style for dimmed text
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(DimColor())
}

func ErrorColor() lipgloss.Color { return lipgloss.Color(errorColorCode) }

// ErrorStyle returns the style for error messages
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ErrorColor()).
		Bold(true)
}

// LabelStyle returns the style for field labels
func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(AccentColor())
}

func SuccessColor() lipgloss.Color { return lipgloss.Color(successColorCode) }

// SuccessStyle returns the style for success messages
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(SuccessColor())
}

// TitleStyle returns the style for screen titles
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(AccentColor()).
		Bold(true)
}

func WarningColor() lipgloss.Color { return lipgloss.Color(warningColorCode) }

// WarningStyle returns the style for warning messages
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(WarningColor()).
		Bold(true)
}

// RenderBox renders content inside a rounded border box
func RenderBox(content string) string {
	return BoxStyle().Render(content)
}

// RenderDim renders dimmed help text
func RenderDim(text string) string {
	return DimStyle().Render(text)
}

// RenderError renders an error message
func RenderError(text string) string {
	return ErrorStyle().Render(text)
}

// RenderLabel renders a field label
func RenderLabel(text string) string {
	return LabelStyle().Render(text)
}

// RenderSuccess renders a success message
func RenderSuccess(text string) string {
	return SuccessStyle().Render(text)
}

// RenderTitle renders a screen title
func RenderTitle(text string) string {
	return TitleStyle().Render(text)
}

// RenderWarning renders a warning message
func RenderWarning(text string) string {
	return WarningStyle().Render(text)
}
