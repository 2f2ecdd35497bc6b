// Package library is the canned catalog and playlist service the UI
// fetches from, plus its client. Responses are static JSON delivered
// after a fixed artificial delay; there is no pagination and no
// server-side filtering.
package library

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	zlog "github.com/rs/zerolog/log"

	"github.com/kemblesong/music-player-challenge/internal/catalog"
)

//go:embed data/tracks.json
var tracksJSON []byte

//go:embed data/playlists.json
var playlistsJSON []byte

// Server serves the canned library over HTTP.
type Server struct {
	delay     time.Duration
	router    chi.Router
	playlists []catalog.Playlist
}

// NewServer creates a Server that answers every request after delay.
func NewServer(delay time.Duration) *Server {
	s := &Server{delay: delay}

	// The embedded data is a build-time fixture; a decode failure here
	// is a broken build, not a runtime condition.
	if err := json.Unmarshal(playlistsJSON, &s.playlists); err != nil {
		panic(err)
	}

	r := chi.NewRouter()
	r.Get("/api/tracks", s.handleTracks)
	r.Get("/api/playlists", s.handlePlaylists)
	r.Get("/api/playlists/{id}", s.handlePlaylist)
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleTracks(w http.ResponseWriter, r *http.Request) {
	time.Sleep(s.delay)
	writeJSONBytes(w, tracksJSON)
	zlog.Debug().Str("path", r.URL.Path).Msg("served catalog tracks")
}

func (s *Server) handlePlaylists(w http.ResponseWriter, r *http.Request) {
	time.Sleep(s.delay)
	writeJSONBytes(w, playlistsJSON)
	zlog.Debug().Str("path", r.URL.Path).Msg("served playlists")
}

func (s *Server) handlePlaylist(w http.ResponseWriter, r *http.Request) {
	time.Sleep(s.delay)
	id := chi.URLParam(r, "id")
	for i := range s.playlists {
		if s.playlists[i].ID == id {
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(&s.playlists[i]); err != nil {
				zlog.Error().Err(err).Str("playlist", id).Msg("encoding playlist response")
			}
			return
		}
	}
	zlog.Warn().Str("playlist", id).Msg("unknown playlist requested")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "playlist not found"})
}

func writeJSONBytes(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(body); err != nil {
		zlog.Error().Err(err).Msg("writing library response")
	}
}
