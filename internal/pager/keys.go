package pager

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the pager key bindings.
type KeyMap struct {
	Down      key.Binding
	Up        key.Binding
	MultiDown key.Binding
	MultiUp   key.Binding
	PageDown  key.Binding
	PageUp    key.Binding
	HalfDown  key.Binding
	HalfUp    key.Binding
	Home      key.Binding
	End       key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard less-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		MultiDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("shift+↓/J", "scroll down fast"),
		),
		MultiUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("shift+↑/K", "scroll up fast"),
		),
		PageDown: key.NewBinding(
			key.WithKeys(" ", "pgdown"),
			key.WithHelp("space", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("b", "pgup"),
			key.WithHelp("b", "page up"),
		),
		HalfDown: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "half page down"),
		),
		HalfUp: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "half page up"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to start"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to end"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
