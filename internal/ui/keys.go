package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Views
	ViewMovies   key.Binding
	ViewSearch   key.Binding
	ViewLanguage key.Binding
	ViewCatalog  key.Binding
	Back         key.Binding
	Escape       key.Binding

	// Records
	New          key.Binding
	Edit         key.Binding
	ToggleStatus key.Binding
	Copy         key.Binding
	CopyAlt      key.Binding
	FocusSearch  key.Binding
	Refresh      key.Binding
	Open         key.Binding

	// Forms
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// Keys is the default keybinding configuration
var Keys = KeyMap{
	// Navigation
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+b"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+f"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "bottom"),
	),

	// Views
	ViewMovies: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "lista de películas"),
	),
	ViewSearch: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "buscar película"),
	),
	ViewLanguage: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "lenguajes netflix"),
	),
	ViewCatalog: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "lenguajes api"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "b"),
		key.WithHelp("esc", "back to list"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),

	// Records
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	ToggleStatus: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "toggle status"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	CopyAlt: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "copy name"),
	),
	FocusSearch: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open endpoint"),
	),

	// Forms
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter", "ctrl+s"),
		key.WithHelp("enter", "save"),
	),

	// General
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
