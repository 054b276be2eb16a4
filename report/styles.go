package report

import "github.com/charmbracelet/lipgloss"

var (
	// Headings
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Explanations and secondary text
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Node highlight states
	CurrentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	VisitedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	IdleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	// Status line
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Level is the severity of a status message.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// StyleForLevel returns the status style for lvl.
func StyleForLevel(lvl Level) lipgloss.Style {
	switch lvl {
	case LevelSuccess:
		return SuccessStyle
	case LevelError:
		return ErrorStyle
	default:
		return InfoStyle
	}
}
