package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "ctrl+c":
		return true
	}
	return false
}

func helpText(grouped bool) string {
	s := "enter play  n play next  s shuffle  / search  o group  p source  tab focus  j/k move  g/G top/end"
	if grouped {
		s += "  a-z jump"
	}
	s += "  q quit"
	return s
}
