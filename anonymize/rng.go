// Package anonymize - RNG utilities shared by the repair strategies.
//
// This file centralizes deterministic random generation for the engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical repairs across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; give each concurrent repair its own seed or source.
package anonymize

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

// shuffleVisitsInPlace performs an in-place Fisher–Yates shuffle of the
// greedy visit pool using rng. If rng==nil, a deterministic default
// stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func shuffleVisitsInPlace(pool []visit, rng *rand.Rand) {
	n := len(pool)
	if n <= 1 {
		return
	}

	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
}
