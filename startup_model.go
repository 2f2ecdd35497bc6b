package main

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zlog "github.com/rs/zerolog/log"

	"github.com/kemblesong/music-player-challenge/internal/catalog"
	"github.com/kemblesong/music-player-challenge/internal/config"
	"github.com/kemblesong/music-player-challenge/internal/library"
	"github.com/kemblesong/music-player-challenge/internal/playback"
	"github.com/kemblesong/music-player-challenge/internal/ui"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#AA0000", Dark: "#FF6666"})
)

type startupPhase uint8

const (
	phaseLoading startupPhase = iota
	phaseFailed
)

type libraryLoadedMsg struct {
	tracks    []catalog.Track
	playlists []catalog.Playlist
}

type libraryFailedMsg struct {
	err error
}

// startupModel covers the window between program start and a loaded
// library: a spinner while the one-shot fetch runs, and a terminal
// error view with a manual retry. Once the library arrives it hands
// control to the browsing model.
type startupModel struct {
	client  *library.Client
	cfg     *config.Config
	spinner spinner.Model
	phase   startupPhase
	errMsg  string
	width   int
	height  int
}

func newStartupModel(client *library.Client, cfg *config.Config) startupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	return startupModel{
		client:  client,
		cfg:     cfg,
		spinner: s,
		phase:   phaseLoading,
	}
}

// loadLibraryCmd fetches the catalog and the playlists. Either failure
// is terminal; there is no retry or backoff beyond the user pressing r.
func loadLibraryCmd(client *library.Client) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		tracks, err := client.FetchTracks(ctx)
		if err != nil {
			return libraryFailedMsg{err: err}
		}
		playlists, err := client.FetchPlaylists(ctx)
		if err != nil {
			return libraryFailedMsg{err: err}
		}
		return libraryLoadedMsg{tracks: tracks, playlists: playlists}
	}
}

func (m startupModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadLibraryCmd(m.client),
		tea.SetWindowTitle("player"),
	)
}

func (m startupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.phase == phaseLoading {
			return m, cmd
		}
		return m, nil

	case libraryLoadedMsg:
		zlog.Info().
			Int("tracks", len(msg.tracks)).
			Int("playlists", len(msg.playlists)).
			Msg("library loaded")
		app := ui.New(playback.NewStore(), msg.tracks, msg.playlists, m.cfg.UI.BufferRows)
		width, height := m.width, m.height
		// The program delivered its WindowSizeMsg to this model;
		// replay it so the browsing model can measure its panels.
		return app, tea.Batch(app.Init(), func() tea.Msg {
			return tea.WindowSizeMsg{Width: width, Height: height}
		})

	case libraryFailedMsg:
		zlog.Error().Err(msg.err).Msg("library fetch failed")
		m.phase = phaseFailed
		m.errMsg = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		case "r":
			if m.phase == phaseFailed {
				m.phase = phaseLoading
				m.errMsg = ""
				return m, tea.Batch(m.spinner.Tick, loadLibraryCmd(m.client))
			}
		}
		return m, nil
	}

	return m, nil
}

func (m startupModel) View() string {
	s := "\n"
	s += "  " + headerStyle.Render("player") + "\n"
	s += "\n"
	if m.phase == phaseFailed {
		s += "  " + errorStyle.Render("Could not load the library") + "\n"
		s += "  " + statusStyle.Render(m.errMsg) + "\n"
		s += "\n"
		s += "  " + helpStyle.Render("r retry  q quit") + "\n"
		return s
	}
	s += "  " + m.spinner.View() + statusStyle.Render(" loading library...") + "\n"
	s += "\n"
	s += "  " + helpStyle.Render("q quit") + "\n"
	return s
}
