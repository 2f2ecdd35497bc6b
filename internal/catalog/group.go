package catalog

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// GroupMode selects how the track list is reshaped for display.
type GroupMode int

const (
	GroupNone GroupMode = iota
	GroupAlbum
	GroupArtist
)

// Next cycles to the next grouping mode.
func (m GroupMode) Next() GroupMode {
	switch m {
	case GroupNone:
		return GroupAlbum
	case GroupAlbum:
		return GroupArtist
	default:
		return GroupNone
	}
}

// String returns the name of the grouping mode.
func (m GroupMode) String() string {
	switch m {
	case GroupAlbum:
		return "album"
	case GroupArtist:
		return "artist"
	default:
		return "off"
	}
}

// RowKind distinguishes header rows from track rows.
type RowKind int

const (
	RowTrack RowKind = iota
	RowHeader
)

// Row is one renderable line in a flat or grouped track list. Header
// rows carry a Label; track rows carry a Track.
type Row struct {
	Kind  RowKind
	Label string
	Track Track
}

// Rows reshapes tracks for the given grouping mode. Grouped output
// orders sections alphabetically by label and keeps the input order of
// tracks within each section. The result is an opaque item list as far
// as the renderer is concerned.
func Rows(tracks []Track, mode GroupMode) []Row {
	if mode == GroupNone {
		rows := make([]Row, len(tracks))
		for i, t := range tracks {
			rows[i] = Row{Kind: RowTrack, Track: t}
		}
		return rows
	}

	key := func(t Track) string {
		var k string
		if mode == GroupAlbum {
			k = t.Album
		} else {
			k = t.Artist
		}
		if k == "" {
			k = "Unknown"
		}
		return k
	}

	groups := lo.GroupBy(tracks, key)
	labels := lo.Keys(groups)
	sort.Slice(labels, func(i, j int) bool {
		return strings.ToLower(labels[i]) < strings.ToLower(labels[j])
	})

	rows := make([]Row, 0, len(tracks)+len(labels))
	for _, label := range labels {
		rows = append(rows, Row{Kind: RowHeader, Label: label})
		for _, t := range groups[label] {
			rows = append(rows, Row{Kind: RowTrack, Track: t})
		}
	}
	return rows
}

// SectionIndex returns the index of the first header row whose label
// starts with prefix (case-insensitive), or -1 if no section matches.
func SectionIndex(rows []Row, prefix string) int {
	p := strings.ToLower(prefix)
	for i, r := range rows {
		if r.Kind == RowHeader && strings.HasPrefix(strings.ToLower(r.Label), p) {
			return i
		}
	}
	return -1
}

// TracksOf extracts the track sequence from a row list, skipping
// headers. This is the logical sequence selections index into.
func TracksOf(rows []Row) []Track {
	tracks := make([]Track, 0, len(rows))
	for _, r := range rows {
		if r.Kind == RowTrack {
			tracks = append(tracks, r.Track)
		}
	}
	return tracks
}
