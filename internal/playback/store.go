// Package playback owns the playing track and the upcoming queue.
package playback

import "github.com/kemblesong/music-player-challenge/internal/catalog"

// Store holds the playback queue state. It is only mutated from
// Bubbletea's single-threaded Update loop, so it carries no locking.
//
// The upcoming queue never contains the playing track. While shuffle
// is off, original mirrors queue exactly so that a later shuffle can
// be undone; while shuffle is on, original holds the order captured
// when shuffle was enabled, plus any front-insertions made since.
type Store struct {
	current  *catalog.Track
	queue    []catalog.Track
	original []catalog.Track
	shuffled bool
}

// NewStore creates an empty Store: nothing playing, empty queue.
func NewStore() *Store {
	return &Store{}
}

// Current returns a copy of the playing track, or nil when nothing is
// playing.
func (s *Store) Current() *catalog.Track {
	if s.current == nil {
		return nil
	}
	t := *s.current
	return &t
}

// Queue returns a copy of the upcoming tracks, front first.
func (s *Store) Queue() []catalog.Track {
	out := make([]catalog.Track, len(s.queue))
	copy(out, s.queue)
	return out
}

// Shuffled returns whether shuffle mode is active.
func (s *Store) Shuffled() bool {
	return s.shuffled
}

// Len returns the number of upcoming tracks.
func (s *Store) Len() int {
	return len(s.queue)
}

// SelectAndPlay makes track the playing track and rebuilds the queue
// from everything after it in source. A track that is not in source
// starts with an empty queue; that is not an error. Shuffle is always
// cleared, and the prior queue state is fully replaced.
func (s *Store) SelectAndPlay(track catalog.Track, source []catalog.Track) {
	idx := len(source)
	for i, t := range source {
		if t.ID == track.ID {
			idx = i
			break
		}
	}
	next := idx + 1
	if next > len(source) {
		next = len(source)
	}

	s.current = &track
	s.queue = append([]catalog.Track(nil), source[next:]...)
	s.original = append([]catalog.Track(nil), source[next:]...)
	s.shuffled = false
}

// PlayNext inserts track at the front of the queue, regardless of
// shuffle state. The insertion also lands at the front of the
// pre-shuffle order, so disabling shuffle keeps it. Duplicates and the
// playing track itself are allowed.
func (s *Store) PlayNext(track catalog.Track) {
	s.queue = append([]catalog.Track{track}, s.queue...)
	s.original = append([]catalog.Track{track}, s.original...)
}

// ToggleShuffle randomizes the queue, or restores the order captured
// when shuffle was last enabled. The playing track never participates
// in the permutation, and toggling twice reproduces the original
// order exactly.
func (s *Store) ToggleShuffle() {
	if s.shuffled {
		s.queue = append([]catalog.Track(nil), s.original...)
		s.shuffled = false
		return
	}
	s.original = append([]catalog.Track(nil), s.queue...)
	s.queue = Shuffle(s.queue)
	s.shuffled = true
}
