package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit   key.Binding
	Reload key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
	}
}

// hint renders the bindings as "q quit · r reload".
func (k keyMap) hint() string {
	out := ""
	for i, b := range []key.Binding{k.Quit, k.Reload} {
		if i > 0 {
			out += " · "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
