package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Collapse    key.Binding
	Expand      key.Binding
	Enter       key.Binding
	Select      key.Binding
	Scan        key.Binding
	SetPath     key.Binding
	Duplicates  key.Binding
	Delete      key.Binding
	Sort        key.Binding
	Search      key.Binding
	ExtFilter   key.Binding
	SizeFilter  key.Binding
	ClearFilter key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Confirm     key.Binding
	Permanent   key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "collapse"),
		),
		Expand: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "expand"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle folder"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "toggle select"),
		),
		Scan: key.NewBinding(
			key.WithKeys("s", "r"),
			key.WithHelp("s", "rescan"),
		),
		SetPath: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "set path"),
		),
		Duplicates: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "find duplicates"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete selected"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "order"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ExtFilter: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "ext filter"),
		),
		SizeFilter: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "min size"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous view"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Permanent: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle permanent"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Select, keys.Delete, keys.NextTab, keys.Help, keys.Quit}
}

func (keys KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Up, keys.Down, keys.PageUp, keys.PageDown},
		{keys.Expand, keys.Collapse, keys.Enter, keys.Select},
		{keys.Scan, keys.SetPath, keys.Duplicates, keys.Delete},
		{keys.Search, keys.ExtFilter, keys.SizeFilter, keys.ClearFilter},
		{keys.NextTab, keys.PrevTab, keys.Sort, keys.Quit},
	}
}
