package components

import "github.com/charmbracelet/bubbles/key"

// SearchPaneKeyMap defines key bindings shared by the browse and discover panes
type SearchPaneKeyMap struct {
	Search    key.Binding
	Done      key.Binding
	Clear     key.Binding
	PrevGenre key.Binding
	NextGenre key.Binding
}

// DefaultSearchPaneKeyMap returns the default search pane key bindings
func DefaultSearchPaneKeyMap() SearchPaneKeyMap {
	return SearchPaneKeyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Done: key.NewBinding(
			key.WithKeys("enter", "esc", "down"),
			key.WithHelp("enter", "done"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "clear query"),
		),
		PrevGenre: key.NewBinding(
			key.WithKeys("h", "left", "["),
			key.WithHelp("h/←", "prev genre"),
		),
		NextGenre: key.NewBinding(
			key.WithKeys("l", "right", "]"),
			key.WithHelp("l/→", "next genre"),
		),
	}
}

// SearchPaneKeys is the package-level key map instance
var SearchPaneKeys = DefaultSearchPaneKeyMap()
