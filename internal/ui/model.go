package ui

import (
	"math"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zlog "github.com/rs/zerolog/log"

	"github.com/kemblesong/music-player-challenge/internal/catalog"
	"github.com/kemblesong/music-player-challenge/internal/playback"
	"github.com/kemblesong/music-player-challenge/internal/viewport"
)

// rowHeight is the extent of one list row in terminal cells.
const rowHeight = 1.0

type focusArea int

const (
	focusList focusArea = iota
	focusQueue
)

// Model is the Bubbletea model for the browsing UI: a catalog panel
// rendered through a viewport window, and a queue panel showing the
// playing track and the upcoming queue.
type Model struct {
	store *playback.Store

	catalogTracks []catalog.Track
	playlists     []catalog.Playlist
	sourceIdx     int // -1 = full catalog, otherwise playlist index

	mode  catalog.GroupMode
	query string
	rows  []catalog.Row

	search    textinput.Model
	searching bool
	searchSeq int

	window    *viewport.Window
	qwindow   *viewport.Window
	scroll    *smoothScroll
	animating bool
	cursor    int

	focused  focusArea
	width    int
	height   int
	quitting bool
}

// New creates the browsing model over a fetched library snapshot.
func New(store *playback.Store, tracks []catalog.Track, playlists []catalog.Playlist, bufferRows int) Model {
	ti := textinput.New()
	ti.Placeholder = "title, artist or album"
	ti.CharLimit = 128
	ti.Width = 40

	w := viewport.New(rowHeight, 0)
	w.SetBuffer(bufferRows)
	qw := viewport.New(rowHeight, 0)
	qw.SetBuffer(bufferRows)

	sc := newSmoothScroll()
	// Imperative jumps and out-of-range resets move the window offset
	// directly; the animated offset has to follow or the next frame
	// would scroll right back.
	w.OnOffsetChange(sc.Snap)

	m := Model{
		store:         store,
		catalogTracks: tracks,
		playlists:     playlists,
		sourceIdx:     -1,
		search:        ti,
		window:        w,
		qwindow:       qw,
		scroll:        sc,
	}
	m.rebuildRows()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("player")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.scrollBy(-3 * rowHeight)
		case tea.MouseButtonWheelDown:
			return m.scrollBy(3 * rowHeight)
		}
		return m, nil

	case scrollTickMsg:
		if !m.animating {
			return m, nil
		}
		m.window.OnScroll(m.scroll.Step())
		if m.scroll.Settled() {
			m.animating = false
			return m, nil
		}
		return m, scrollTickCmd()

	case searchDebounceMsg:
		// Stale debounce ticks carry an old sequence number; only the
		// most recent keystroke applies.
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.query = m.search.Value()
		m.rebuildRows()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.window.Measure(float64(m.listHeight()))
		m.qwindow.Measure(float64(m.queueListHeight()))
		return m, nil
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}

	switch msg.String() {
	case "tab":
		if m.focused == focusList {
			m.focused = focusQueue
		} else {
			m.focused = focusList
		}
		return m, nil

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "s":
		m.store.ToggleShuffle()
		m.qwindow.SetItemCount(m.store.Len())
		zlog.Info().Bool("shuffled", m.store.Shuffled()).Msg("toggled shuffle")
		return m, nil

	case "o":
		m.mode = m.mode.Next()
		m.rebuildRows()
		return m, nil

	case "p":
		m.cycleSource()
		return m, nil

	case "enter":
		return m.selectCursor()

	case "n":
		if row, ok := m.cursorTrackRow(); ok {
			m.store.PlayNext(row.Track)
			m.qwindow.SetItemCount(m.store.Len())
			zlog.Info().Str("track", row.Track.ID).Msg("queued track next")
		}
		return m, nil

	case "down", "j":
		return m.move(1)

	case "up", "k":
		return m.move(-1)

	case "pgdown", "ctrl+d":
		return m.move(m.listHeight())

	case "pgup", "ctrl+u":
		return m.move(-m.listHeight())

	case "g":
		return m.jumpTo(0)

	case "G":
		return m.jumpTo(len(m.rows) - 1)
	}

	// Remaining single letters jump to the matching section header
	// when the list is grouped.
	if m.focused == focusList && m.mode != catalog.GroupNone {
		if s := msg.String(); len(s) == 1 && s[0] >= 'a' && s[0] <= 'z' {
			if idx := catalog.SectionIndex(m.rows, s); idx >= 0 {
				return m.jumpTo(idx)
			}
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case "enter":
		m.searchSeq++ // invalidate any pending debounce
		m.query = m.search.Value()
		m.rebuildRows()
		m.searching = false
		m.search.Blur()
		return m, nil

	case "esc":
		m.searchSeq++
		m.query = ""
		m.search.Reset()
		m.search.Blur()
		m.searching = false
		m.rebuildRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.searchSeq++
	return m, tea.Batch(cmd, searchDebounceCmd(m.searchSeq))
}

// selectCursor plays the track under the cursor and rebuilds the queue
// from the rest of the rendered sequence.
func (m Model) selectCursor() (tea.Model, tea.Cmd) {
	row, ok := m.cursorTrackRow()
	if !ok {
		return m, nil
	}
	m.store.SelectAndPlay(row.Track, catalog.TracksOf(m.rows))
	m.qwindow.SetItemCount(m.store.Len())
	m.qwindow.OnScroll(0)
	zlog.Info().Str("track", row.Track.ID).Int("queued", m.store.Len()).Msg("selected track")
	return m, tea.SetWindowTitle(row.Track.Title + " — player")
}

func (m Model) cursorTrackRow() (catalog.Row, bool) {
	if m.focused != focusList || m.cursor < 0 || m.cursor >= len(m.rows) {
		return catalog.Row{}, false
	}
	row := m.rows[m.cursor]
	return row, row.Kind == catalog.RowTrack
}

// move shifts the cursor (catalog focus) or scrolls the queue panel.
func (m Model) move(delta int) (tea.Model, tea.Cmd) {
	if m.focused == focusQueue {
		off := m.qwindow.Offset() + float64(delta)*rowHeight
		if max := m.queueMaxOffset(); off > max {
			off = max
		}
		m.qwindow.OnScroll(off)
		return m, nil
	}

	if len(m.rows) == 0 {
		return m, nil
	}
	next := m.cursor + delta
	if next < 0 {
		next = 0
	}
	if next > len(m.rows)-1 {
		next = len(m.rows) - 1
	}
	// Do not rest on a header row; keep going in the travel direction,
	// falling back to the other direction at list edges.
	step := 1
	if delta < 0 {
		step = -1
	}
	for next >= 0 && next < len(m.rows) && m.rows[next].Kind == catalog.RowHeader {
		next += step
	}
	if next < 0 || next > len(m.rows)-1 {
		next = m.cursor
	}
	m.cursor = next
	return m.ensureCursorVisible()
}

// jumpTo moves the cursor and snaps the viewport so the row is at the
// top, used for top/bottom and section jumps.
func (m Model) jumpTo(index int) (tea.Model, tea.Cmd) {
	if m.focused != focusList || len(m.rows) == 0 {
		return m, nil
	}
	if index < 0 {
		index = 0
	}
	if index > len(m.rows)-1 {
		index = len(m.rows) - 1
	}
	m.cursor = index
	m.window.ScrollToIndex(index)
	m.animating = false
	return m, nil
}

// ensureCursorVisible retargets the scroll animation so the cursor row
// stays inside the viewport.
func (m Model) ensureCursorVisible() (tea.Model, tea.Cmd) {
	top := float64(m.cursor) * rowHeight
	bottom := top + rowHeight
	view := float64(m.listHeight())

	target := m.scroll.Target()
	if bottom > view+target {
		target = bottom - view
	}
	if top < target {
		target = top
	}
	m.scroll.SetTarget(target)
	return m.startAnimation()
}

func (m Model) scrollBy(delta float64) (tea.Model, tea.Cmd) {
	if m.focused == focusQueue {
		off := m.qwindow.Offset() + delta
		if max := m.queueMaxOffset(); off > max {
			off = max
		}
		m.qwindow.OnScroll(off)
		return m, nil
	}
	target := m.scroll.Target() + delta
	if max := m.listMaxOffset(); target > max {
		target = max
	}
	m.scroll.SetTarget(target)
	return m.startAnimation()
}

func (m Model) startAnimation() (tea.Model, tea.Cmd) {
	if m.animating || m.scroll.Settled() {
		return m, nil
	}
	m.animating = true
	return m, scrollTickCmd()
}

func (m *Model) rebuildRows() {
	m.rows = catalog.Rows(catalog.Search(m.sourceTracks(), m.query), m.mode)
	m.window.SetItemCount(len(m.rows))
	if m.cursor > len(m.rows)-1 {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) cycleSource() {
	m.sourceIdx++
	if m.sourceIdx >= len(m.playlists) {
		m.sourceIdx = -1
	}
	m.cursor = 0
	m.rebuildRows()
	m.window.ScrollToIndex(0)
	m.animating = false
}

func (m Model) sourceTracks() []catalog.Track {
	if m.sourceIdx >= 0 && m.sourceIdx < len(m.playlists) {
		return m.playlists[m.sourceIdx].Tracks
	}
	return m.catalogTracks
}

func (m Model) sourceName() string {
	if m.sourceIdx >= 0 && m.sourceIdx < len(m.playlists) {
		return m.playlists[m.sourceIdx].Name
	}
	return "Library"
}

func (m Model) listMaxOffset() float64 {
	max := float64(len(m.rows))*rowHeight - float64(m.listHeight())
	return math.Max(max, 0)
}

func (m Model) queueMaxOffset() float64 {
	max := float64(m.store.Len())*rowHeight - float64(m.queueListHeight())
	return math.Max(max, 0)
}

// listHeight is the row count of the catalog panel body.
func (m Model) listHeight() int {
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

// queueListHeight is the row count of the up-next list, below the
// now-playing block.
func (m Model) queueListHeight() int {
	h := m.listHeight() - 4
	if h < 1 {
		h = 1
	}
	return h
}
