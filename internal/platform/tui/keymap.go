package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// GameKeyMap defines the key bindings for playing. It satisfies the
// help.KeyMap interface so the bindings double as the help bar content.
type GameKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	SoftDrop  key.Binding
	HardDrop  key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateCW, k.HardDrop, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SoftDrop, k.HardDrop},
		{k.RotateCW, k.RotateCCW, k.Pause, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "soft drop"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hard drop"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("up", "x"),
			key.WithHelp("↑/x", "rotate cw"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "rotate ccw"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
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

// Action translates a key message to a game action. Quit and Help are
// handled by the model, not the game, and map to ActionNone here.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.SoftDrop):
		return core.ActionSoftDrop
	case key.Matches(msg, k.HardDrop):
		return core.ActionHardDrop
	case key.Matches(msg, k.RotateCW):
		return core.ActionRotateCW
	case key.Matches(msg, k.RotateCCW):
		return core.ActionRotateCCW
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
