// Package core provides the labelled, undirected, add-only graph substrate
// the anonymization engine operates on.
//
// What:
//
//   - Graph holds a fixed population of n vertices (ids 0..n-1), each
//     carrying one label from a fixed alphabet 0..l-1 (l ≤ MaxLabels),
//     plus an undirected edge set with no loops and no duplicates.
//   - Edges are add-only: anonymization strictly grows the edge set, so
//     there is no removal API.
//   - AddRandomEdge draws uniformly among the currently absent pairs,
//     the primitive both repair strategies fall back on.
//   - DistributeLabelsEvenly spreads the label alphabet near-uniformly
//     over the vertices; AssignLabels installs an explicit labelling.
//   - LabelHistogram and NeighborhoodHistogram are the raw material for
//     distribution analysis: global counts, and closed-neighborhood
//     counts (a vertex together with its neighbors).
//
// Why:
//
//   - The engine needs exact, cheap degree/adjacency queries and a
//     mutation surface small enough to reason about: every state change
//     is an edge insertion or a label write.
//   - Determinism: Neighbors returns ascending ids, and every randomized
//     operation takes an explicit *rand.Rand, so runs are reproducible
//     seed-for-seed.
//
// Complexity:
//
//   - HasEdge, Degree, AddEdge: O(1) expected.
//   - Neighbors: O(deg · log deg) for the sorted copy.
//   - AddRandomEdge: O(1) expected while sparse; bounded sampling with an
//     O(n²) exact-enumeration fallback near completeness.
//   - Histograms: O(l) and O(deg + l).
//
// Errors (sentinels; branch with errors.Is):
//
//   - ErrNoVertices, ErrNoLabels, ErrTooManyLabels: construction.
//   - ErrVertexRange, ErrLabelRange, ErrLabelSliceLen: labelling/queries.
//   - ErrSelfLoop, ErrEdgeExists: rejected insertions.
//   - ErrGraphComplete: no absent pair remains.
//   - ErrNilRand: a randomized operation was given no source.
//
// Graph is not safe for concurrent mutation; give each goroutine its own
// instance (Clone is a deep copy).
package core
