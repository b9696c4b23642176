package list

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Down          key.Binding
	Up            key.Binding
	Home          key.Binding
	End           key.Binding
	FilterDone    key.Binding
	FilterPending key.Binding
	Reset         key.Binding
	Continue      key.Binding
	Quit          key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.FilterDone, k.FilterPending, k.Reset, k.Continue, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Home, k.End},
		{k.FilterDone, k.FilterPending, k.Reset, k.Continue, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
		Home:          key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first")),
		End:           key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last")),
		FilterDone:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "filter done")),
		FilterPending: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "filter pending")),
		Reset:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Continue:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "continue at")),
		Quit:          key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}
