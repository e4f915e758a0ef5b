// SPDX-License-Identifier: MIT
// Package: graphanon/builder
//
// impl_complete.go — implementation of Complete(n, l).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); label alphabet validated by core.New.
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n²) edge insertions. Space: O(n + m) for the graph itself.
//
// Determinism:
//   • Pair order is lexicographic by (i,j), i<j; no randomness involved.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphanon/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds the complete simple graph K_n over l labels. Every
// vertex starts with label 0; a complete graph satisfies every proximity
// threshold once labelled, whatever the labelling.
func Complete(n, l int) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}

	g, err := core.New(n, l)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, i, j, err)
			}
		}
	}

	return g, nil
}
