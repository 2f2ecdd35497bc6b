package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/kemblesong/music-player-challenge/internal/catalog"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.width
	if w < 40 {
		w = 80
	}

	header := headerStyle.Render("player")

	var searchLine string
	if m.searching {
		searchLine = statusStyle.Render("search: ") + m.search.View()
	} else {
		searchLine = statusStyle.Render(m.statusText())
	}

	listWidth := w * 3 / 5
	queueWidth := w - listWidth - 2
	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.catalogView(listWidth),
		"  ",
		m.queueView(queueWidth),
	)

	help := helpStyle.Render(helpText(m.mode != catalog.GroupNone))

	s := "\n"
	s += "  " + header + "\n"
	s += "  " + searchLine + "\n"
	s += panels + "\n"
	s += "  " + help + "\n"
	return s
}

func (m Model) statusText() string {
	s := m.sourceName()
	if m.query != "" {
		s += fmt.Sprintf("  matching %q", m.query)
	}
	if m.mode != catalog.GroupNone {
		s += "  grouped by " + m.mode.String()
	}
	if m.store.Shuffled() {
		s += "  [shuffle]"
	}
	if len(m.rows) > 0 {
		s += fmt.Sprintf("  %d/%d", m.cursor+1, len(m.rows))
	}
	return s
}
