package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/gitsy/internal/lineedit"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Line editing
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Backspace key.Binding
	Delete    key.Binding

	// Actions
	Select key.Binding
	Filter key.Binding
	Yes    key.Binding
	No     key.Binding

	// General
	Back key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "ctrl+a"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "ctrl+e"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "cancel"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// editLine applies a line editing key to buf. Other keys leave it unchanged.
func editLine(keys KeyMap, buf lineedit.Buffer, msg tea.KeyMsg) lineedit.Buffer {
	switch {
	case key.Matches(msg, keys.Backspace):
		buf.Backspace()
	case key.Matches(msg, keys.Delete):
		buf.DeleteForward()
	case key.Matches(msg, keys.Left):
		buf.MoveLeft()
	case key.Matches(msg, keys.Right):
		buf.MoveRight()
	case key.Matches(msg, keys.Home):
		buf.MoveHome()
	case key.Matches(msg, keys.End):
		buf.MoveEnd()
	case msg.Type == tea.KeyRunes, msg.Type == tea.KeySpace:
		buf.InsertString(string(msg.Runes))
	}
	return buf
}
