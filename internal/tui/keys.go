package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	UpDown   key.Binding
	AddPhone key.Binding
	Budget   key.Binding
	MarkSold key.Binding
	MarkScam key.Binding
	Hide     key.Binding
	Refresh  key.Binding
	Dismiss  key.Binding
	Palette  key.Binding
	Enter    key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		UpDown:   key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", "navigate")),
		AddPhone: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add phone")),
		Budget:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "set budget")),
		MarkSold: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "mark sold")),
		MarkScam: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "mark scammed")),
		Hide:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Dismiss:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dismiss notice")),
		Palette:  key.NewBinding(key.WithKeys(":", "ctrl+p"), key.WithHelp(":", "commands")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.AddPhone, k.Budget, k.MarkSold, k.MarkScam, k.Hide, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.UpDown, k.AddPhone, k.Budget, k.Refresh},
		{k.MarkSold, k.MarkScam, k.Hide, k.Dismiss},
		{k.Palette, k.Enter, k.Close, k.Quit},
	}
}

type modalKeyMap struct {
	keyMap
}

func (k modalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Close, k.Quit}
}

func (k modalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Enter, k.Close, k.Quit}}
}
