// File: methods_labels.go
// Role: Label reads and writes: Label, SetLabel, AssignLabels,
//       DistributeLabelsEvenly, and the two histogram views.
// Determinism:
//   - DistributeLabelsEvenly is driven solely by the supplied *rand.Rand;
//     every sampling loop is bounded with a deterministic fallback.
package core

import "math/rand"

// Label returns the label of v, or ErrVertexRange.
func (g *Graph) Label(v int) (int, error) {
	if !g.inRange(v) {
		return 0, ErrVertexRange
	}

	return g.labels[v], nil
}

// SetLabel assigns label to v.
// Returns ErrVertexRange or ErrLabelRange; the graph is unchanged on error.
func (g *Graph) SetLabel(v, label int) error {
	if !g.inRange(v) {
		return ErrVertexRange
	}
	if label < 0 || label >= g.l {
		return ErrLabelRange
	}
	g.labels[v] = label

	return nil
}

// AssignLabels installs one label per vertex from a slice indexed by
// vertex id. The whole slice is validated before anything is written, so
// the graph is unchanged on error.
// Returns ErrLabelSliceLen when len(labels) != n and ErrLabelRange when
// any entry falls outside [0,l).
func (g *Graph) AssignLabels(labels []int) error {
	if len(labels) != len(g.labels) {
		return ErrLabelSliceLen
	}
	for _, label := range labels {
		if label < 0 || label >= g.l {
			return ErrLabelRange
		}
	}
	copy(g.labels, labels)

	return nil
}

// LabelHistogram returns per-label vertex counts over the whole graph.
// The slice has length l and sums to n.
func (g *Graph) LabelHistogram() []int {
	h := make([]int, g.l)
	for _, label := range g.labels {
		h[label]++
	}

	return h
}

// NeighborhoodHistogram returns per-label counts over the closed
// neighborhood of v: the vertex itself plus its neighbors. The slice has
// length l and sums to deg(v)+1.
// Returns ErrVertexRange for an invalid id.
func (g *Graph) NeighborhoodHistogram(v int) ([]int, error) {
	if !g.inRange(v) {
		return nil, ErrVertexRange
	}

	h := make([]int, g.l)
	h[g.labels[v]]++
	for u := range g.adj[v] {
		h[g.labels[u]]++
	}

	return h, nil
}

// DistributeLabelsEvenly overwrites the current labelling with a random
// near-uniform one. Each label 1..l-1 claims exactly n/l vertices; the
// n mod l leftover vertices receive pairwise-distinct random labels, with
// a 1-in-l chance per occupied draw of surrendering a leftover slot; the
// rest keep label 0. Label 0 therefore ends up with n/l + (n mod l
// adjustments) vertices, within one of every other label.
// Returns ErrNilRand when rng is nil.
// Complexity: O(n + l) expected.
func (g *Graph) DistributeLabelsEvenly(rng *rand.Rand) error {
	if rng == nil {
		return ErrNilRand
	}

	n, l := len(g.labels), g.l
	for v := range g.labels {
		g.labels[v] = 0
	}

	// Quota phase: labels 1..l-1 each claim n/l unlabelled vertices.
	quota := n / l
	for label := 1; label < l; label++ {
		for assigned := 0; assigned < quota; assigned++ {
			g.labels[g.randomUnlabelled(rng)] = label
		}
	}

	remaining := n % l
	if remaining == 0 {
		return nil
	}

	// Remainder phase: spread the leftover slots with pairwise-distinct
	// random labels. An occupied draw surrenders the slot with
	// probability 1/l, leaving one more vertex at label 0.
	used := make(map[int]bool, remaining)
	chosen := make(map[int]bool, remaining)
	for budget := remaining * maxSampleAttempts; remaining > 0 && budget > 0; budget-- {
		v := rng.Intn(n)
		switch {
		case g.labels[v] == 0 && !chosen[v]:
			label := randomUnusedLabel(rng, used, l)
			used[label] = true
			chosen[v] = true
			g.labels[v] = label
			remaining--
		case rng.Intn(l) == 0:
			remaining--
		}
	}

	// Budget exhausted: place whatever is left by a deterministic sweep.
	for v := 0; remaining > 0 && v < n; v++ {
		if g.labels[v] == 0 && !chosen[v] {
			label := lowestUnusedLabel(used, l)
			used[label] = true
			chosen[v] = true
			g.labels[v] = label
			remaining--
		}
	}

	return nil
}

// randomUnlabelled returns a uniformly chosen vertex still carrying
// label 0: bounded sampling first, exact enumeration once the budget is
// spent. Callers guarantee at least one such vertex exists.
func (g *Graph) randomUnlabelled(rng *rand.Rand) int {
	n := len(g.labels)
	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		if v := rng.Intn(n); g.labels[v] == 0 {
			return v
		}
	}

	free := make([]int, 0, n)
	for v, label := range g.labels {
		if label == 0 {
			free = append(free, v)
		}
	}

	return free[rng.Intn(len(free))]
}

// randomUnusedLabel draws a label not yet in used: bounded sampling, then
// the lowest unused label. Callers guarantee len(used) < l.
func randomUnusedLabel(rng *rand.Rand, used map[int]bool, l int) int {
	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		if label := rng.Intn(l); !used[label] {
			return label
		}
	}

	return lowestUnusedLabel(used, l)
}

// lowestUnusedLabel returns the smallest label absent from used.
func lowestUnusedLabel(used map[int]bool, l int) int {
	for label := 0; label < l; label++ {
		if !used[label] {
			return label
		}
	}

	return 0
}
