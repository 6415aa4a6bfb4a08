// Package search - RNG utilities for the one-time offset shuffle.
//
// Randomness touches exactly one thing here: the order of the 8 knight
// offsets, permuted once at configuration time when Options.RandomOrder is
// set. It never recurs mid-search, so a fixed seed reproduces the entire
// run — path, trial count, and all.
package search

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleOffsetsInPlace performs an in-place Fisher–Yates shuffle of offs.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleOffsetsInPlace(offs [][2]int, rng *rand.Rand) {
	for i := len(offs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		offs[i], offs[j] = offs[j], offs[i]
	}
}
