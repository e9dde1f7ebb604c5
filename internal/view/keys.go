package view

import "github.com/charmbracelet/bubbles/key"

// keyMap stands in for the dashboard's buttons.
type keyMap struct {
	Health key.Binding
	Items  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Health: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "check health")),
		Items:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "get items")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp and FullHelp implement help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Health, k.Items, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Health, k.Items}, {k.Help, k.Quit}}
}
