package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Digit     key.Binding
	Point     key.Binding
	Operator  key.Binding
	Equals    key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Theme     key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Digit:     key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "digit")),
		Point:     key.NewBinding(key.WithKeys("."), key.WithHelp(".", "point")),
		Operator:  key.NewBinding(key.WithKeys("+", "-", "*", "/"), key.WithHelp("+-*/", "operator")),
		Equals:    key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("=", "equals")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Clear:     key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("c", "clear")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Backspace, k.Clear, k.Theme, k.Quit}
}

func renderHelp(bindings []key.Binding) string {
	var s string
	for i, b := range bindings {
		if i > 0 {
			s += "  "
		}
		h := b.Help()
		s += h.Key + " " + h.Desc
	}
	return s
}
