package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickCmd schedules the next generator tick for the given panel generation
func tickCmd(generation int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg{generation: generation, at: t}
	})
}

// frameCmd schedules the next animation frame of the hero core
func frameCmd(rate time.Duration) tea.Cmd {
	return tea.Tick(rate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
