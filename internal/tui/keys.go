package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Search     key.Binding
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Yank       key.Binding
	Jump       key.Binding
	NextMatch  key.Binding
	PrevMatch  key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	ConfirmYes key.Binding
	ConfirmNo  key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add todo"),
		),
		Edit: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("r", "d"),
			key.WithHelp("r/d", "remove"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank"),
		),
		Jump: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "jump"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys("down", "ctrl+j"),
			key.WithHelp("↓", "next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("up", "ctrl+k"),
			key.WithHelp("↑", "prev match"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ConfirmYes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		ConfirmNo: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "no"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}
