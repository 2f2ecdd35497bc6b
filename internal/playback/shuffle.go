package playback

import (
	"math/rand"

	"github.com/kemblesong/music-player-challenge/internal/catalog"
)

// Shuffle returns a uniformly random permutation of tracks. The input
// slice is never mutated. The walk is a plain Fisher-Yates from the
// last index down; a random-comparator sort would bias the
// distribution and must not be substituted here.
func Shuffle(tracks []catalog.Track) []catalog.Track {
	out := make([]catalog.Track, len(tracks))
	copy(out, tracks)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
