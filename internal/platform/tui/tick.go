// Package tui provides the Bubble Tea interface of the trainer: the home
// menu, the lessons, the collector game and the scoreboard, plus SSH
// serving via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg drives the game clock. gen ties a frame to the game screen that
// scheduled it so frames of a closed screen are dropped.
type frameMsg struct {
	gen int
	at  time.Time
}

// frameCmd returns a command that delivers the next frame at the given rate.
func frameCmd(gen, fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}

// advanceMsg ends a lesson feedback pause.
type advanceMsg struct {
	seq int
}

func advanceAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return advanceMsg{seq: seq}
	})
}
