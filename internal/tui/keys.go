package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	Start    key.Binding
	Reset    key.Binding
	NewData  key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Variant  key.Binding
	ClearLog key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous tab"),
	),
	Start: key.NewBinding(
		key.WithKeys("s", "enter"),
		key.WithHelp("s", "start"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	NewData: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new array"),
	),
	Grow: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+/-", "array size"),
	),
	Shrink: key.NewBinding(
		key.WithKeys("-", "_"),
	),
	Faster: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("←/→", "speed"),
	),
	Slower: key.NewBinding(
		key.WithKeys("left", "h"),
	),
	Variant: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "traversal order"),
	),
	ClearLog: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear log"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Reset, k.NextTab, k.Faster, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Reset, k.ClearLog},
		{k.NextTab, k.PrevTab},
		{k.NewData, k.Grow, k.Variant},
		{k.Faster, k.Theme, k.Help, k.Quit},
	}
}
