// Package tui is a terminal keypad for the calculator.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/keypad"
)

// Model is the Bubble Tea model of the keypad.
type Model struct {
	buf    *keypad.Buffer
	opts   []calculator.Option
	keys   keyMap
	dark   bool
	status string
}

// New creates a keypad with an empty display. opts are used for every
// evaluation.
func New(dark bool, opts ...calculator.Option) Model {
	return Model{
		buf:  new(keypad.Buffer),
		opts: opts,
		keys: newKeyMap(),
		dark: dark,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	s := km.String()
	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Theme):
		m.dark = !m.dark
		return m, nil
	case key.Matches(km, m.keys.Equals):
		if _, err := m.buf.Equals(m.opts...); err != nil {
			m.status = keypad.Message(err)
			return m, nil
		}
	case key.Matches(km, m.keys.Digit):
		m.buf.Digit(int(s[0] - '0'))
	case key.Matches(km, m.keys.Point):
		m.buf.Point()
	case key.Matches(km, m.keys.Operator):
		m.buf.Operator(s[0])
	case key.Matches(km, m.keys.Backspace):
		m.buf.Backspace()
	case key.Matches(km, m.keys.Clear):
		m.buf.Clear()
	default:
		return m, nil
	}
	m.status = ""
	return m, nil
}

// Display returns the text on the calculator's display.
func (m Model) Display() string {
	return m.buf.String()
}

// Status returns the error message from the last evaluation, if it failed and
// nothing has been typed since.
func (m Model) Status() string {
	return m.status
}

// Dark reports whether the dark theme is showing.
func (m Model) Dark() bool {
	return m.dark
}

var layout = [][]string{
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", ".", "=", "+"},
	{"C", "⌫"},
}

func (m Model) View() string {
	th := lightTheme
	if m.dark {
		th = darkTheme
	}
	var rows []string
	for _, row := range layout {
		var cells []string
		for _, label := range row {
			st := th.digit
			switch label {
			case "+", "-", "*", "/":
				st = th.operator
			case "=":
				st = th.equals
			case "C":
				st = th.clear
			case "⌫":
				st = th.erase
			}
			cells = append(cells, st.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	pad := lipgloss.JoinVertical(lipgloss.Left, rows...)
	display := th.display.Width(lipgloss.Width(pad) - 2).Align(lipgloss.Right).Render(m.buf.String())
	body := lipgloss.JoinVertical(lipgloss.Left, display, pad)

	var b strings.Builder
	b.WriteString(th.panel.Render(body))
	b.WriteByte('\n')
	if m.status != "" {
		b.WriteString(th.status.Render(m.status))
		b.WriteByte('\n')
	}
	b.WriteString(th.footer.Render(renderHelp(m.keys.ShortHelp())))
	return b.String()
}

// Run starts the keypad on the terminal and blocks until the user quits.
func Run(dark bool, opts ...calculator.Option) error {
	_, err := tea.NewProgram(New(dark, opts...)).Run()
	return err
}
