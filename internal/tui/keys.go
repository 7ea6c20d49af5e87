package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	lock    key.Binding
	copy    key.Binding
	reveal  key.Binding
	forget  key.Binding
	info    key.Binding
}

var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab", "down")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	lock:    key.NewBinding(key.WithKeys("ctrl+l")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y")),
	reveal:  key.NewBinding(key.WithKeys("ctrl+r")),
	forget:  key.NewBinding(key.WithKeys("ctrl+d")),
	info:    key.NewBinding(key.WithKeys("f1")),
}
