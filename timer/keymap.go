package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	interrupt  key.Binding
	reset      key.Binding
	workUp     key.Binding
	workDown   key.Binding
	breakUp    key.Binding
	breakDown  key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "s"),
		key.WithHelp("s", "start/pause"),
	),
	interrupt: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "interrupt"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	workUp: key.NewBinding(
		key.WithKeys("W"),
		key.WithHelp("W/w", "work +/- 1 min"),
	),
	workDown: key.NewBinding(
		key.WithKeys("w"),
	),
	breakUp: key.NewBinding(
		key.WithKeys("B"),
		key.WithHelp("B/b", "break +/- 1 min"),
	),
	breakDown: key.NewBinding(
		key.WithKeys("b"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
