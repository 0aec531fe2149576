package compassui

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Quit    key.Binding
	Outline key.Binding
	Help    key.Binding
	Left    key.Binding
	Right   key.Binding
}

func defaultKeys(manual bool) keyMap {
	k := keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Outline: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "outline"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "turn right"),
		),
	}
	k.Left.SetEnabled(manual)
	k.Right.SetEnabled(manual)
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Outline, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Outline, k.Help, k.Quit},
	}
}
