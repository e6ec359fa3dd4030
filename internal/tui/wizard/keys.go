package wizard

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Inc      key.Binding
	Dec      key.Binding
	Toggle   key.Binding
	Confirm  key.Binding
	Back     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Edit     key.Binding
	Share    key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	Inc:      key.NewBinding(key.WithKeys("right", "l", "+", "=")),
	Dec:      key.NewBinding(key.WithKeys("left", "h", "-")),
	Toggle:   key.NewBinding(key.WithKeys("space", "y", "n")),
	Confirm:  key.NewBinding(key.WithKeys("enter")),
	Back:     key.NewBinding(key.WithKeys("esc")),
	Tab:      key.NewBinding(key.WithKeys("tab")),
	ShiftTab: key.NewBinding(key.WithKeys("shift+tab")),
	Edit:     key.NewBinding(key.WithKeys("e")),
	Share:    key.NewBinding(key.WithKeys("s")),
	Restart:  key.NewBinding(key.WithKeys("r")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c")),
}
