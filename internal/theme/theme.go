package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI. The
// defaults keep the classic launcher palette: brown prompt, underlined
// filter text, yellow group rules, light magenta focus.
type Styles struct {
	Header            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	Item              *lipgloss.Style
	FocusedItem       *lipgloss.Style
	GroupRule         *lipgloss.Style
	NotFound          *lipgloss.Style
	CommandHint       *lipgloss.Style
	Footer            *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Underline(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FocusedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	),
	GroupRule: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	),
	NotFound: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	CommandHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
