package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// KeyMap defines the key bindings for a play session.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Wait    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Wait, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Wait},
		{k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Wait: key.NewBinding(
			key.WithKeys(".", " "),
			key.WithHelp("space", "wait"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "next episode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a world action.
// The second result is false for keys that do not step the world.
func (k KeyMap) Action(msg tea.KeyMsg) (core.Action, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp, true
	case key.Matches(msg, k.Down):
		return core.ActionDown, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, true
	case key.Matches(msg, k.Right):
		return core.ActionRight, true
	case key.Matches(msg, k.Wait):
		return core.ActionNothing, true
	}
	return core.ActionNothing, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
