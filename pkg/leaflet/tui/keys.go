package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the reader's key bindings.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	PageUp         key.Binding
	PageDown       key.Binding
	Open           key.Binding
	Close          key.Binding
	HistoryBack    key.Binding
	HistoryForward key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the default bindings. Help texts are message IDs
// and are localized when the footer is drawn.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "b", "backspace"),
			key.WithHelp("esc", "back"),
		),
		HistoryBack: key.NewBinding(
			key.WithKeys("[", "alt+left"),
			key.WithHelp("[/]", "history"),
		),
		HistoryForward: key.NewBinding(
			key.WithKeys("]", "alt+right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// listHelp and postHelp are the bindings shown in the footer.
func (k KeyMap) listHelp() []key.Binding {
	return []key.Binding{k.Open, k.HistoryBack, k.Quit}
}

func (k KeyMap) postHelp() []key.Binding {
	return []key.Binding{k.Close, k.HistoryBack, k.Quit}
}
