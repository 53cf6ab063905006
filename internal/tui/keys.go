package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	send    key.Binding
	copy    key.Binding
	refresh key.Binding
	info    key.Binding
	scroll  key.Binding
	back    key.Binding
	quit    key.Binding
}

var keys = keyMap{
	send:    key.NewBinding(key.WithKeys("enter")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y")),
	refresh: key.NewBinding(key.WithKeys("ctrl+r")),
	info:    key.NewBinding(key.WithKeys("f1")),
	scroll:  key.NewBinding(key.WithKeys("pgup", "pgdown")),
	back:    key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
}
