package generator

import (
	"math/rand"

	"github.com/katalvlaran/lab/grid"
)

// DefaultSeed is used when callers pass seed 0 or no RNG option at all.
// The value is arbitrary but stable to keep default output reproducible.
const DefaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// shuffledDirections returns grid.Directions in a uniformly random order
// using an in-place Fisher–Yates shuffle.
//
// Complexity: O(1), three draws from r.
func shuffledDirections(r *rand.Rand) [4]grid.Direction {
	dirs := grid.Directions
	for i := len(dirs) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}
