// Package tui provides the Bubble Tea front-end for breakout: key input,
// scene rendering, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step. Gen identifies the tick stream that
// produced it; messages from a superseded stream are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd schedules the next tick of stream gen.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
