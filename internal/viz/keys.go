package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Sort     key.Binding
	Generate key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Shape    key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Sort:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"), key.WithHelp("1-8", "sort")),
	Generate: key.NewBinding(key.WithKeys("g", "r"), key.WithHelp("g", "new array")),
	Grow:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more bars")),
	Shrink:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "fewer bars")),
	Faster:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "faster")),
	Slower:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "slower")),
	Shape:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shape")),
	Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sort, k.Generate, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Sort, k.Generate, k.Shape},
		{k.Grow, k.Shrink, k.Faster, k.Slower},
		{k.Theme, k.Help, k.Quit},
	}
}
