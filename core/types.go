// File: types.go
// Role: Graph type, construction, sentinel errors, and scalar accessors.
// Determinism:
//   - Vertex ids and the label alphabet are dense integer ranges fixed at
//     construction; no hidden renumbering ever occurs.
package core

import "errors"

// MaxLabels is the largest label alphabet a Graph accepts. The bound is
// shared with the engine's 32-bit deficiency masks; widening those masks
// is the path past it.
const MaxLabels = 32

// maxSampleAttempts bounds every rejection-sampling loop in this package
// before the deterministic fallback takes over.
const maxSampleAttempts = 64

// Sentinel errors reported by graph construction and mutation.
var (
	// ErrNoVertices is returned when a graph is constructed with n < 1.
	ErrNoVertices = errors.New("core: graph needs at least one vertex")

	// ErrNoLabels is returned when a graph is constructed with l < 1.
	ErrNoLabels = errors.New("core: graph needs at least one label")

	// ErrTooManyLabels is returned when l exceeds MaxLabels.
	ErrTooManyLabels = errors.New("core: label alphabet exceeds MaxLabels")

	// ErrVertexRange is returned when a vertex id lies outside [0,n).
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrLabelRange is returned when a label lies outside [0,l).
	ErrLabelRange = errors.New("core: label out of range")

	// ErrLabelSliceLen is returned by AssignLabels when the slice length
	// differs from the vertex count.
	ErrLabelSliceLen = errors.New("core: label slice length differs from vertex count")

	// ErrSelfLoop is returned when an edge would connect a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops are not allowed")

	// ErrEdgeExists is returned when the requested edge is already present.
	ErrEdgeExists = errors.New("core: edge already present")

	// ErrGraphComplete is returned by AddRandomEdge when every vertex pair
	// is already adjacent.
	ErrGraphComplete = errors.New("core: graph is complete")

	// ErrNilRand is returned when a randomized operation receives a nil
	// random source.
	ErrNilRand = errors.New("core: nil random source")
)

// Graph is a fixed-size, undirected, labelled graph. The zero value is
// not usable; construct with New.
type Graph struct {
	labels []int              // labels[v] ∈ [0,l), one per vertex
	adj    []map[int]struct{} // adj[v] = neighbor set of v
	l      int                // label alphabet size
	m      int                // undirected edge count
}

// New returns a Graph with n isolated vertices, all carrying label 0, over
// a label alphabet of size l.
// Returns ErrNoVertices for n < 1, ErrNoLabels for l < 1, and
// ErrTooManyLabels for l > MaxLabels.
func New(n, l int) (*Graph, error) {
	if n < 1 {
		return nil, ErrNoVertices
	}
	if l < 1 {
		return nil, ErrNoLabels
	}
	if l > MaxLabels {
		return nil, ErrTooManyLabels
	}

	adj := make([]map[int]struct{}, n)
	for v := range adj {
		adj[v] = make(map[int]struct{})
	}

	return &Graph{labels: make([]int, n), adj: adj, l: l}, nil
}

// VertexCount returns n, the fixed number of vertices.
func (g *Graph) VertexCount() int { return len(g.labels) }

// LabelCount returns l, the fixed size of the label alphabet.
func (g *Graph) LabelCount() int { return g.l }

// EdgeCount returns the number of undirected edges currently present.
func (g *Graph) EdgeCount() int { return g.m }

// IsComplete reports whether every pair of distinct vertices is adjacent,
// i.e. m == n·(n-1)/2.
func (g *Graph) IsComplete() bool {
	n := len(g.labels)
	return g.m == n*(n-1)/2
}

// inRange reports whether v is a valid vertex id.
func (g *Graph) inRange(v int) bool { return v >= 0 && v < len(g.labels) }
