package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/kemblesong/music-player-challenge/internal/util"
)

// queueView renders the now-playing block and the windowed up-next
// list. The queue panel owns its own viewport window, fully
// independent of the catalog panel's.
func (m Model) queueView(width int) string {
	title := panelTitleStyle.Render("Now Playing")
	if m.focused == focusQueue {
		title = panelTitleStyle.Render("▸ Now Playing")
	}

	lines := []string{title}

	if cur := m.store.Current(); cur != nil {
		lines = append(lines,
			titleStyle.Render(truncate(cur.Title, width-2)),
			artistStyle.Render(truncate(fmt.Sprintf("%s — %s", cur.Artist, cur.Album), width-2)),
			timeStyle.Render(util.FormatSeconds(cur.Duration)),
		)
	} else {
		lines = append(lines, helpStyle.Render("nothing playing"), "", "")
	}

	queue := m.store.Queue()
	lines = append(lines, panelTitleStyle.Render(fmt.Sprintf("Up Next (%d)", len(queue))))

	height := m.queueListHeight()
	r := m.qwindow.Range()
	if r.Empty() {
		lines = append(lines, helpStyle.Render("queue is empty"))
	} else {
		skip := int(math.Floor((m.qwindow.Offset() - r.RenderOffset) / rowHeight))
		if skip < 0 {
			skip = 0
		}
		rendered := 0
		for i := r.Start + skip; i <= r.End && i < len(queue) && rendered < height; i++ {
			t := queue[i]
			label := truncate(fmt.Sprintf("%d. %s — %s", i+1, t.Title, t.Artist), width-2)
			lines = append(lines, statusStyle.Render(label))
			rendered++
		}
	}

	for len(lines) < m.listHeight()+1 {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
