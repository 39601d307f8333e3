package core

import "math/rand"

// Shuffles the slice reproducibly. The same seed always
// yields the same order.
func SeededShuffle[S ~[]E, E any](slice S, rngSeed int64) {
	rng := rand.New(rand.NewSource(rngSeed))
	shuffle(slice, rng)
}

func shuffle[S ~[]E, E any](slice S, rng *rand.Rand) {
	rng.Shuffle(
		len(slice),
		func(i, j int) { slice[i], slice[j] = slice[j], slice[i] },
	)
}
