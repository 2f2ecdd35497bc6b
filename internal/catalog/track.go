// Package catalog defines the track and playlist records served by the
// library service, plus the list reshapes the UI renders.
package catalog

import "github.com/samber/lo"

// Track represents a single track from the library catalog.
// Tracks are immutable values; all comparisons are by ID.
type Track struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	ArtworkURL string `json:"artworkUrl"`
	Duration   int    `json:"duration"` // seconds
}

// Playlist represents a named, ordered selection of tracks.
type Playlist struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ArtworkURL  string  `json:"artworkUrl"`
	Tracks      []Track `json:"tracks"`
}

// TrackIDs returns the IDs of all tracks in the playlist.
func (p *Playlist) TrackIDs() []string {
	return lo.Map(p.Tracks, func(t Track, _ int) string { return t.ID })
}

// TotalDuration returns the summed duration of all tracks in seconds.
func (p *Playlist) TotalDuration() int {
	return lo.SumBy(p.Tracks, func(t Track) int { return t.Duration })
}
