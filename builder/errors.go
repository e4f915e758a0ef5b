// SPDX-License-Identifier: MIT
// Package: graphanon/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context via `%w` with a method-name prefix.
//   • Constructors never panic; every failure is a returned sentinel.

package builder

import "errors"

// ErrTooFewVertices indicates that the requested vertex count is smaller
// than the minimum the constructor supports.
// Classification: Validation error (parameters).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that an edge probability lies outside
// the closed interval [0,1].
// Classification: Validation error (parameters).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was invoked
// without a *rand.Rand. Only truly stochastic calls require one: Random
// with p equal to 0 or 1 is deterministic and accepts a nil rng.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")
