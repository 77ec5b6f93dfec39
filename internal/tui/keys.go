package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of the applications view.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	LoadMore key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("enter", "l", "m"),
			key.WithHelp("enter/l", "load more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.LoadMore, k.Quit}
}
