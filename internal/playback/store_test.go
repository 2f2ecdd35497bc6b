package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemblesong/music-player-challenge/internal/catalog"
)

func sequence(ids ...string) []catalog.Track {
	tracks := make([]catalog.Track, len(ids))
	for i, id := range ids {
		tracks[i] = catalog.Track{ID: id, Title: "Track " + id}
	}
	return tracks
}

func queueIDs(s *Store) []string {
	queue := s.Queue()
	ids := make([]string, len(queue))
	for i, t := range queue {
		ids[i] = t.ID
	}
	return ids
}

func TestNewStoreIsEmpty(t *testing.T) {
	s := NewStore()

	assert.Nil(t, s.Current())
	assert.Empty(t, s.Queue())
	assert.False(t, s.Shuffled())
}

func TestSelectAndPlayQueuesExactRemainder(t *testing.T) {
	source := sequence("a", "b", "c", "d", "e")

	tests := []struct {
		name      string
		pick      int
		wantQueue []string
	}{
		{name: "first track queues full remainder", pick: 0, wantQueue: []string{"b", "c", "d", "e"}},
		{name: "middle track queues strict suffix", pick: 2, wantQueue: []string{"d", "e"}},
		{name: "last track queues nothing", pick: 4, wantQueue: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.SelectAndPlay(source[tt.pick], source)

			require.NotNil(t, s.Current())
			assert.Equal(t, source[tt.pick].ID, s.Current().ID)
			assert.Equal(t, tt.wantQueue, queueIDs(s))
			assert.False(t, s.Shuffled())
		})
	}
}

func TestSelectAndPlayUnknownTrackYieldsEmptyQueue(t *testing.T) {
	s := NewStore()
	source := sequence("a", "b", "c")
	adHoc := catalog.Track{ID: "zzz", Title: "Not In Any List"}

	s.SelectAndPlay(adHoc, source)

	require.NotNil(t, s.Current())
	assert.Equal(t, "zzz", s.Current().ID)
	assert.Empty(t, s.Queue())
}

func TestSelectAndPlayReplacesPriorState(t *testing.T) {
	s := NewStore()
	source := sequence("a", "b", "c", "d")

	s.SelectAndPlay(source[0], source)
	s.ToggleShuffle()
	s.PlayNext(catalog.Track{ID: "x"})

	s.SelectAndPlay(source[2], source)

	assert.Equal(t, []string{"d"}, queueIDs(s))
	assert.False(t, s.Shuffled(), "selection must clear shuffle")
}

func TestPlayNextInsertsAtFrontInCallOrder(t *testing.T) {
	s := NewStore()
	source := sequence("a", "b", "c")
	s.SelectAndPlay(source[0], source)

	s.PlayNext(catalog.Track{ID: "x1"})
	s.PlayNext(catalog.Track{ID: "x2"})
	s.PlayNext(catalog.Track{ID: "x3"})

	assert.Equal(t, []string{"x3", "x2", "x1", "b", "c"}, queueIDs(s))
}

func TestPlayNextAllowsDuplicatesAndCurrent(t *testing.T) {
	s := NewStore()
	source := sequence("a", "b")
	s.SelectAndPlay(source[0], source)

	s.PlayNext(source[1]) // already queued
	s.PlayNext(source[0]) // currently playing

	assert.Equal(t, []string{"a", "b", "b"}, queueIDs(s))
	assert.Equal(t, "a", s.Current().ID)
}

func TestToggleShuffleRoundTripsExactOrder(t *testing.T) {
	s := NewStore()
	source := sequence("a", "b", "c", "d", "e", "f", "g", "h")
	s.SelectAndPlay(source[0], source)
	before := queueIDs(s)

	s.ToggleShuffle()
	assert.True(t, s.Shuffled())
	assert.ElementsMatch(t, before, queueIDs(s), "shuffle must permute, not alter, the set")

	s.ToggleShuffle()
	assert.False(t, s.Shuffled())
	assert.Equal(t, before, queueIDs(s))
}

func TestToggleShuffleNeverTouchesCurrent(t *testing.T) {
	s := NewStore()
	source := sequence("a", "b", "c", "d")
	s.SelectAndPlay(source[1], source)

	for range 10 {
		s.ToggleShuffle()
		require.NotNil(t, s.Current())
		assert.Equal(t, "b", s.Current().ID)
		assert.NotContains(t, queueIDs(s), "b", "current track must never enter the queue")
	}
}

func TestPlayNextWhileShuffledSurvivesUnshuffle(t *testing.T) {
	s := NewStore()
	source := sequence("a", "b", "c", "d", "e")
	s.SelectAndPlay(source[0], source)
	before := queueIDs(s)

	s.ToggleShuffle()
	s.PlayNext(catalog.Track{ID: "x"})

	assert.Equal(t, "x", queueIDs(s)[0], "insertion lands at the live queue front")

	s.ToggleShuffle()
	assert.Equal(t, append([]string{"x"}, before...), queueIDs(s),
		"unshuffle must keep tracks queued while shuffled")
}

func TestScenarioSelectPlayNextShuffleRoundTrip(t *testing.T) {
	source := sequence("A", "B", "C", "D", "E")
	s := NewStore()

	s.SelectAndPlay(source[2], source) // select C
	require.Equal(t, "C", s.Current().ID)
	require.Equal(t, []string{"D", "E"}, queueIDs(s))

	s.PlayNext(source[1]) // play B next
	require.Equal(t, []string{"B", "D", "E"}, queueIDs(s))

	s.ToggleShuffle()
	assert.ElementsMatch(t, []string{"B", "D", "E"}, queueIDs(s))
	assert.NotContains(t, queueIDs(s), "C")

	s.ToggleShuffle()
	assert.Equal(t, []string{"B", "D", "E"}, queueIDs(s))
}

func TestQueueAccessorReturnsCopy(t *testing.T) {
	s := NewStore()
	source := sequence("a", "b", "c")
	s.SelectAndPlay(source[0], source)

	got := s.Queue()
	got[0] = catalog.Track{ID: "mutated"}

	assert.Equal(t, []string{"b", "c"}, queueIDs(s))
}

func TestToggleShuffleOnEmptyQueue(t *testing.T) {
	s := NewStore()

	s.ToggleShuffle()
	assert.True(t, s.Shuffled())
	assert.Empty(t, s.Queue())

	s.ToggleShuffle()
	assert.False(t, s.Shuffled())
	assert.Empty(t, s.Queue())
}
