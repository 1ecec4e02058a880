package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zombie/internal/config"
	"github.com/vovakirdan/zombie/internal/core"
)

// KeyMap defines the key bindings for the simulation.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Stats   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Stats, k.Quit},
	}
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(keys config.KeyConfig) KeyMap {
	return KeyMap{
		Up:      binding(keys.Up, "walk up"),
		Down:    binding(keys.Down, "walk down"),
		Left:    binding(keys.Left, "walk left"),
		Right:   binding(keys.Right, "walk right"),
		Stats:   binding(keys.Stats, "toggle stats"),
		Restart: binding(keys.Restart, "restart"),
		Quit:    binding(keys.Quit, "quit"),
	}
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Input.Keys)
}

func binding(keys []string, desc string) key.Binding {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = keyName(k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// keyName makes invisible keys readable in help text.
func keyName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// Action translates a key message to its bound action.
// Quit is checked first so it cannot be shadowed.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Stats):
		return core.ActionStats
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
