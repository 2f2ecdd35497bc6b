package catalog

import (
	"strings"

	"github.com/samber/lo"
)

// Search returns the tracks whose title, artist or album contains the
// query, case-insensitively. A blank query returns the input unchanged.
func Search(tracks []Track, query string) []Track {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return tracks
	}
	return lo.Filter(tracks, func(t Track, _ int) bool {
		return strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Artist), q) ||
			strings.Contains(strings.ToLower(t.Album), q)
	})
}
