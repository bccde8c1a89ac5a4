// Package tui provides the Bubble Tea front end for the bingo board.
// It handles the terminal UI loop, key bindings and the celebration effect.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the celebration animation by one frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
