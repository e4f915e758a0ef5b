// File: methods_edges.go
// Role: Edge insertion and adjacency queries: AddEdge, AddRandomEdge,
//       HasEdge, Degree, Neighbors.
// Determinism:
//   - Neighbors returns ids sorted ascending (stable logs and goldens).
//   - AddRandomEdge is driven solely by the supplied *rand.Rand.
package core

import (
	"math/rand"
	"sort"
)

// AddEdge inserts the undirected edge {u,v}.
// Returns ErrVertexRange when either endpoint is out of range, ErrSelfLoop
// when u == v, and ErrEdgeExists when the pair is already adjacent; the
// graph is unchanged on every error. Expected O(1).
func (g *Graph) AddEdge(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexRange
	}
	if u == v {
		return ErrSelfLoop
	}
	if _, dup := g.adj[u][v]; dup {
		return ErrEdgeExists
	}

	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.m++

	return nil
}

// HasEdge reports whether u and v are adjacent. Out-of-range ids and
// u == v report false.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Degree returns the number of neighbors of v, or ErrVertexRange.
func (g *Graph) Degree(v int) (int, error) {
	if !g.inRange(v) {
		return 0, ErrVertexRange
	}

	return len(g.adj[v]), nil
}

// Neighbors returns the neighbor ids of v sorted ascending. The slice is
// a copy; callers may keep or mutate it freely.
// Returns ErrVertexRange for an invalid id.
// Complexity: O(deg · log deg).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.inRange(v) {
		return nil, ErrVertexRange
	}

	out := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		out = append(out, u)
	}
	sort.Ints(out)

	return out, nil
}

// AddRandomEdge inserts one edge drawn uniformly among the currently
// absent vertex pairs and returns its endpoints.
// Returns ErrNilRand when rng is nil and ErrGraphComplete when no absent
// pair remains.
//
// While the graph is sparse a bounded rejection loop finds a free pair
// almost immediately; once the attempt budget is spent the absent pairs
// are enumerated exactly, which keeps the draw uniform and guarantees
// termination arbitrarily close to completeness.
func (g *Graph) AddRandomEdge(rng *rand.Rand) (int, int, error) {
	if rng == nil {
		return 0, 0, ErrNilRand
	}
	if g.IsComplete() {
		return 0, 0, ErrGraphComplete
	}

	n := len(g.labels)
	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v || g.HasEdge(u, v) {
			continue
		}
		if err := g.AddEdge(u, v); err != nil {
			return 0, 0, err
		}

		return u, v, nil
	}

	// Dense endgame: collect every absent pair once and pick uniformly.
	type pair struct{ u, v int }
	free := make([]pair, 0)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if !g.HasEdge(u, v) {
				free = append(free, pair{u, v})
			}
		}
	}
	if len(free) == 0 {
		return 0, 0, ErrGraphComplete
	}

	p := free[rng.Intn(len(free))]
	if err := g.AddEdge(p.u, p.v); err != nil {
		return 0, 0, err
	}

	return p.u, p.v, nil
}
