package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor-level bindings. Every other key is typed into
// the box under the pointer.
type KeyMap struct {
	Quit        key.Binding
	Paste       key.Binding
	SnapshotPNG key.Binding
	SnapshotSVG key.Binding
	Help        key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste into box"),
		),
		SnapshotPNG: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "png snapshot"),
		),
		SnapshotSVG: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "svg snapshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
	}
}

// Bindings lists the bindings in help order.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Help, k.Paste, k.SnapshotPNG, k.SnapshotSVG, k.Quit}
}
