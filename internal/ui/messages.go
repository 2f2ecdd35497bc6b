package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type scrollTickMsg time.Time

type searchDebounceMsg struct {
	seq int
}

const scrollFPS = 30

const searchDebounce = 250 * time.Millisecond

func scrollTickCmd() tea.Cmd {
	return tea.Tick(time.Second/scrollFPS, func(t time.Time) tea.Msg {
		return scrollTickMsg(t)
	})
}

func searchDebounceCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}
