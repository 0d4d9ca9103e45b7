package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the panel shortcuts
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Bookmark key.Binding
	GoTo     key.Binding
	Hide     key.Binding
	Delete   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next page"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous page"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "jump to bookmark"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "go to page"),
		),
		Hide: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "hide/show page"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove page"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}
