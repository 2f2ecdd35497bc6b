package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/kemblesong/music-player-challenge/internal/catalog"
	"github.com/kemblesong/music-player-challenge/internal/util"
)

// catalogView renders the windowed track list. Only the rows inside
// the viewport window's range are materialized; the range is then
// trimmed to the panel height from the exact scroll position, which is
// what the window's RenderOffset exists for.
func (m Model) catalogView(width int) string {
	height := m.listHeight()
	title := panelTitleStyle.Render(m.sourceName())
	if m.focused == focusList {
		title = panelTitleStyle.Render("▸ " + m.sourceName())
	}

	lines := make([]string, 0, height+1)
	lines = append(lines, "  "+title)

	r := m.window.Range()
	if r.Empty() {
		lines = append(lines, "  "+helpStyle.Render("no tracks"))
	} else {
		skip := int(math.Floor((m.window.Offset() - r.RenderOffset) / rowHeight))
		if skip < 0 {
			skip = 0
		}
		for i := r.Start + skip; i <= r.End && len(lines) < height+1; i++ {
			lines = append(lines, m.renderRow(i, width))
		}
	}

	for len(lines) < height+1 {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(i, width int) string {
	row := m.rows[i]
	if row.Kind == catalog.RowHeader {
		return "  " + sectionStyle.Render(truncate(row.Label, width-4))
	}

	t := row.Track
	dur := util.FormatSeconds(t.Duration)
	label := fmt.Sprintf("%s — %s", t.Title, t.Artist)
	label = truncate(label, width-len(dur)-8)

	marker := "  "
	style := statusStyle
	if m.focused == focusList && i == m.cursor {
		marker = "> "
		style = selectedStyle
	}
	if cur := m.store.Current(); cur != nil && cur.ID == t.ID {
		marker = "♪ "
	}

	gap := width - len([]rune(label)) - len(dur) - 8
	if gap < 1 {
		gap = 1
	}
	return "  " + marker + style.Render(label) + strings.Repeat(" ", gap) + timeStyle.Render(dur)
}

func truncate(s string, max int) string {
	if max < 1 {
		max = 1
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
