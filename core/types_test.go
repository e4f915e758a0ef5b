// Package core_test verifies construction contracts, scalar accessors, and
// deep-copy semantics of the labelled graph substrate.
package core_test

import (
	"testing"

	"github.com/katalvlaran/graphanon/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustGraph builds a Graph or fails the test immediately.
func mustGraph(t *testing.T, n, l int) *core.Graph {
	t.Helper()
	g, err := core.New(n, l)
	require.NoError(t, err, "New(%d,%d)", n, l)
	return g
}

// mustAddEdge inserts {u,v} or fails the test immediately.
func mustAddEdge(t *testing.T, g *core.Graph, u, v int) {
	t.Helper()
	require.NoError(t, g.AddEdge(u, v), "AddEdge(%d,%d)", u, v)
}

// TestNew_Validation verifies the three construction sentinels and the
// MaxLabels boundary.
func TestNew_Validation(t *testing.T) {
	_, err := core.New(0, 2)
	assert.ErrorIs(t, err, core.ErrNoVertices, "n < 1 must error")

	_, err = core.New(-3, 2)
	assert.ErrorIs(t, err, core.ErrNoVertices, "negative n must error")

	_, err = core.New(5, 0)
	assert.ErrorIs(t, err, core.ErrNoLabels, "l < 1 must error")

	_, err = core.New(5, core.MaxLabels+1)
	assert.ErrorIs(t, err, core.ErrTooManyLabels, "l > MaxLabels must error")

	g, err := core.New(5, core.MaxLabels)
	assert.NoError(t, err, "l == MaxLabels is the inclusive bound")
	assert.Equal(t, core.MaxLabels, g.LabelCount())
}

// TestNew_InitialState verifies a fresh graph has no edges and every
// vertex carries label 0.
func TestNew_InitialState(t *testing.T) {
	g := mustGraph(t, 4, 3)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.LabelCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.IsComplete(), "4 isolated vertices are not complete")

	for v := 0; v < 4; v++ {
		label, err := g.Label(v)
		require.NoError(t, err)
		assert.Equal(t, 0, label, "vertex %d must start at label 0", v)

		deg, err := g.Degree(v)
		require.NoError(t, err)
		assert.Equal(t, 0, deg, "vertex %d must start isolated", v)
	}
}

// TestIsComplete verifies the m == n(n-1)/2 criterion, including the
// single-vertex graph which is trivially complete.
func TestIsComplete(t *testing.T) {
	single := mustGraph(t, 1, 1)
	assert.True(t, single.IsComplete(), "one vertex, zero possible edges")

	g := mustGraph(t, 3, 1)
	mustAddEdge(t, g, 0, 1)
	mustAddEdge(t, g, 1, 2)
	assert.False(t, g.IsComplete(), "2 of 3 edges present")

	mustAddEdge(t, g, 0, 2)
	assert.True(t, g.IsComplete(), "all 3 edges present")
}

// TestGraph_Clone verifies the deep copy: equal content, fully independent
// storage for labels and adjacency.
func TestGraph_Clone(t *testing.T) {
	g := mustGraph(t, 3, 2)
	mustAddEdge(t, g, 0, 1)
	require.NoError(t, g.SetLabel(2, 1))

	c := g.Clone()

	assert.Equal(t, g.VertexCount(), c.VertexCount())
	assert.Equal(t, g.LabelCount(), c.LabelCount())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())
	assert.True(t, c.HasEdge(0, 1), "clone carries the original edges")

	label, err := c.Label(2)
	require.NoError(t, err)
	assert.Equal(t, 1, label, "clone carries the original labels")

	// Mutating the clone must not leak into the original.
	mustAddEdge(t, c, 1, 2)
	require.NoError(t, c.SetLabel(0, 1))

	assert.False(t, g.HasEdge(1, 2), "original adjacency must be independent")
	assert.Equal(t, 1, g.EdgeCount(), "original edge count must be independent")

	label, err = g.Label(0)
	require.NoError(t, err)
	assert.Equal(t, 0, label, "original labels must be independent")
}
