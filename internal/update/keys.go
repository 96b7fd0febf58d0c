package update

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Rorical/SheetRelay/internal/core"
)

// KeyMap defines the controls of the main screen.
type KeyMap struct {
	Browse  key.Binding
	Start   key.Binding
	Retry   key.Binding
	Dismiss key.Binding
	Close   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Browse: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "browse"),
		),
		Start: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s/enter", "start"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "try again"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter", "ok"),
		),
		Close: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "close picker"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Gate enables each control from the lifecycle state alone.
func (k *KeyMap) Gate(s core.State) {
	k.Browse.SetEnabled(s.BrowseEnabled())
	k.Start.SetEnabled(s.StartEnabled())
	k.Retry.SetEnabled(s.Panel() == core.PanelError)
}

// ShortHelp returns the controls shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Browse, k.Start, k.Retry, k.Quit}
}

// FullHelp returns the same controls; the screen has no expanded help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
