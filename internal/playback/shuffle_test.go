package playback

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemblesong/music-player-challenge/internal/catalog"
)

func TestShuffleDegenerateInputs(t *testing.T) {
	assert.Empty(t, Shuffle(nil))
	assert.Empty(t, Shuffle([]catalog.Track{}))

	one := []catalog.Track{{ID: "only"}}
	got := Shuffle(one)
	require.Len(t, got, 1)
	assert.Equal(t, "only", got[0].ID)
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	in := sequence("a", "b", "c", "d", "e", "f", "g", "h")
	snapshot := append([]catalog.Track(nil), in...)

	for range 50 {
		Shuffle(in)
	}

	assert.Equal(t, snapshot, in)
}

func TestShuffleIsAPermutation(t *testing.T) {
	in := sequence("a", "b", "c", "d", "e", "f")

	for range 100 {
		got := Shuffle(in)
		assert.ElementsMatch(t, in, got)
	}
}

// TestShuffleIsRoughlyUniform checks that each track lands at each
// position with near-equal frequency over many trials. A biased
// shuffle (e.g. a random-comparator sort) concentrates tracks near
// their original positions and fails this comfortably; a correct
// Fisher-Yates passes with a wide margin.
func TestShuffleIsRoughlyUniform(t *testing.T) {
	const (
		n      = 5
		trials = 20000
	)

	in := make([]catalog.Track, n)
	for i := range in {
		in[i] = catalog.Track{ID: fmt.Sprintf("t%d", i)}
	}

	counts := make([][]int, n) // counts[position][original index]
	for i := range counts {
		counts[i] = make([]int, n)
	}

	index := make(map[string]int, n)
	for i, tr := range in {
		index[tr.ID] = i
	}

	for range trials {
		out := Shuffle(in)
		for pos, tr := range out {
			counts[pos][index[tr.ID]]++
		}
	}

	expected := float64(trials) / float64(n)
	for pos := range counts {
		for orig, c := range counts[pos] {
			diff := float64(c) - expected
			if diff < 0 {
				diff = -diff
			}
			// 15% tolerance: ~20 standard deviations at these trial
			// counts, so flakes mean a real bias.
			assert.LessOrEqualf(t, diff, expected*0.15,
				"track %d at position %d: got %d, expected ~%.0f", orig, pos, c, expected)
		}
	}
}
