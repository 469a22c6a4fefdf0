package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the navigation bindings understood by the grid. Text
// editing keys are not listed here: the filter editor claims those
// before the key map is consulted.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	NextGroup key.Binding
	PrevGroup key.Binding
	Home      key.Binding
	End       key.Binding
	Commit    key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the standard launcher bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		NextGroup: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next group")),
		PrevGroup: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev group")),
		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first item")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last item")),
		Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}
