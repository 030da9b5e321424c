package confirm

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the rebindable key bindings the bubbletea adapter translates
// into the dialog's input set. Mnemonic shortcuts are not bound here; they
// come from the buttons themselves.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Confirm key.Binding
	Dismiss key.Binding
}

// DefaultKeyMap returns the standard dialog bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "select"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("←/→", "select"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
	}
}

// ShortHelp implements the bubbles help interface.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Confirm, k.Dismiss}
}

// FullHelp implements the bubbles help interface.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Next, k.Prev},
		{k.Confirm, k.Dismiss},
	}
}
