package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/zombie/internal/config"
	"github.com/vovakirdan/zombie/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"f12", tea.KeyMsg{Type: tea.KeyF12}, core.ActionStats},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionStats},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRestart},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.Action(tt.msg))
		})
	}
}

func TestKeyMapQuitWins(t *testing.T) {
	keys := config.Default().Input.Keys
	keys.Up = append(keys.Up, "q")
	km := NewKeyMap(keys)

	assert.Equal(t, core.ActionQuit, km.Action(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}))
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, "space", km.Restart.Help().Key)
	assert.Equal(t, "up/w", km.Up.Help().Key)
	assert.Len(t, km.ShortHelp(), 6)

	var all []key.Binding
	for _, col := range km.FullHelp() {
		all = append(all, col...)
	}
	assert.Len(t, all, 7)
}
