package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mias-adventure/internal/core"
)

// KeyMap defines the key bindings of the game.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Jump     key.Binding
	Up       key.Binding
	Down     key.Binding
	Interact key.Binding
	Confirm  key.Binding
	Restart  key.Binding
	Level    key.Binding
	Back     key.Binding
	Mute     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Interact, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Interact},
		{k.Confirm, k.Up, k.Down},
		{k.Restart, k.Level, k.Back},
		{k.Mute, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "menu up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "menu down"),
		),
		Interact: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "interact"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select/skip"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart level"),
		),
		Level: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Press is one decoded key press.
type Press struct {
	Actions []core.Action // A key may serve several bindings, e.g. up is jump and menu up
	Digit   int           // 1-9 for level select, 0 otherwise
	Quit    bool
	Help    bool
}

// Decode translates a key message to game actions.
func (k KeyMap) Decode(msg tea.KeyMsg) Press {
	var p Press

	if key.Matches(msg, k.Quit) {
		p.Quit = true
		return p
	}
	if key.Matches(msg, k.Help) {
		p.Help = true
		return p
	}
	if key.Matches(msg, k.Level) {
		p.Digit = int(msg.String()[0] - '0')
		return p
	}

	bindings := []struct {
		b      key.Binding
		action core.Action
	}{
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Jump, core.ActionJump},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Interact, core.ActionInteract},
		{k.Confirm, core.ActionConfirm},
		{k.Restart, core.ActionRestart},
		{k.Back, core.ActionBack},
		{k.Mute, core.ActionMute},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.b) {
			p.Actions = append(p.Actions, b.action)
		}
	}
	return p
}
