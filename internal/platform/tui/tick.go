// Package tui hosts the simulation in a Bubble Tea program.
// It handles the terminal UI loop, input mapping, and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to run the next frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after wait.
// Each frame schedules the next, so the delay can change every frame.
func tickCmd(wait time.Duration) tea.Cmd {
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
