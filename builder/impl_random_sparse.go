// SPDX-License-Identifier: MIT
// Package: graphanon/builder
//
// impl_random_sparse.go — implementation of Random(n, l, p, rng).
//
// Canonical model:
//   - Erdős–Rényi generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource); the
//     degenerate p ∈ {0,1} cases are deterministic and accept nil.
//   • Label alphabet validated by core.New; labels start at 0.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n²) Bernoulli trials. Space: O(n + m).
//
// Determinism:
//   • Stable trial order: i asc, then j asc with j>i, so a fixed seed
//     reproduces the exact edge set.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphanon/core"
)

const (
	methodRandom      = "Random"
	minRandomVertices = 1
	probMin           = 0.0
	probMax           = 1.0
)

// Random samples an Erdős–Rényi graph G(n,p) over l labels.
func Random(n, l int, p float64, rng *rand.Rand) (*core.Graph, error) {
	if n < minRandomVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandom, n, minRandomVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandom, p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandom, ErrNeedRandSource)
	}

	g, err := core.New(n, l)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}

	if p == probMin {
		return g, nil
	}
	if p == probMax {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = g.AddEdge(i, j); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandom, i, j, err)
				}
			}
		}

		return g, nil
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() <= p {
				if err = g.AddEdge(i, j); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandom, i, j, err)
				}
			}
		}
	}

	return g, nil
}
