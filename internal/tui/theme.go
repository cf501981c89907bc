package tui

import "github.com/charmbracelet/lipgloss"

// theme holds the styles for one colour scheme.
type theme struct {
	panel    lipgloss.Style
	display  lipgloss.Style
	digit    lipgloss.Style
	operator lipgloss.Style
	equals   lipgloss.Style
	clear    lipgloss.Style
	erase    lipgloss.Style
	status   lipgloss.Style
	footer   lipgloss.Style
}

func button(bg, fg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 2).
		Margin(0, 1, 0, 0)
}

var (
	lightTheme = theme{
		panel:    lipgloss.NewStyle().Background(lipgloss.Color("#ADD8E6")).Padding(1, 2),
		display:  lipgloss.NewStyle().Background(lipgloss.Color("#FFFFFF")).Foreground(lipgloss.Color("#000000")).Border(lipgloss.RoundedBorder()).Padding(0, 1),
		digit:    button("#F0F8FF", "#000000"),
		operator: button("#87CEFA", "#000000"),
		equals:   button("#32CD32", "#000000"),
		clear:    button("#FF4500", "#FFFFFF"),
		erase:    button("#FFA500", "#000000"),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#B22222")).Bold(true),
		footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
	darkTheme = theme{
		panel:    lipgloss.NewStyle().Background(lipgloss.Color("#1E1E1E")).Padding(1, 2),
		display:  lipgloss.NewStyle().Background(lipgloss.Color("#282828")).Foreground(lipgloss.Color("#FFFFFF")).Border(lipgloss.RoundedBorder()).Padding(0, 1),
		digit:    button("#3C3C3C", "#FFFFFF"),
		operator: button("#2F4F6F", "#FFFFFF"),
		equals:   button("#228B22", "#FFFFFF"),
		clear:    button("#B22222", "#FFFFFF"),
		erase:    button("#CC7A00", "#FFFFFF"),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6347")).Bold(true),
		footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)
