package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Direct key.Binding
	Prev   key.Binding
	Next   key.Binding
	Apply  key.Binding
	Hint   key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Direct: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "apply"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "k"),
			key.WithHelp("←", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "j", "tab"),
			key.WithHelp("→", "next"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "apply selected"),
		),
		Hint:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hint")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Direct, k.Prev, k.Next, k.Apply, k.Hint, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
