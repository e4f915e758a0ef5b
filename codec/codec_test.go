// File: codec/codec_test.go
package codec_test

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/graphanon/codec"
	"github.com/katalvlaran/graphanon/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireSameGraph asserts structural equality: sizes, labels and the
// (sorted) adjacency of every vertex.
func requireSameGraph(t *testing.T, want, got *core.Graph) {
	t.Helper()
	require.Equal(t, want.VertexCount(), got.VertexCount())
	require.Equal(t, want.LabelCount(), got.LabelCount())
	require.Equal(t, want.EdgeCount(), got.EdgeCount())
	for v := 0; v < want.VertexCount(); v++ {
		wantLabel, err := want.Label(v)
		require.NoError(t, err)
		gotLabel, err := got.Label(v)
		require.NoError(t, err)
		require.Equal(t, wantLabel, gotLabel, "label of vertex %d", v)

		wantNbrs, err := want.Neighbors(v)
		require.NoError(t, err)
		gotNbrs, err := got.Neighbors(v)
		require.NoError(t, err)
		require.Equal(t, wantNbrs, gotNbrs, "neighbors of vertex %d", v)
	}
}

// TestParse_MirroredListing verifies decoding of a star whose edges
// appear on both endpoints' lines; the duplicates must be absorbed.
func TestParse_MirroredListing(t *testing.T) {
	const in = "3 2\n0 1 2\n1 0\n1 0\n"

	g, err := codec.Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.LabelCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(1, 2))

	labels := make([]int, 3)
	for v := range labels {
		labels[v], err = g.Label(v)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{0, 1, 1}, labels)
}

// TestParse_OneSidedListing verifies that an edge declared on a single
// endpoint's line still lands symmetrically.
func TestParse_OneSidedListing(t *testing.T) {
	const in = "4 2\n0 1\n0\n1 3\n1\n"

	g, err := codec.Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 0), "mirror of a one-sided listing")
	assert.True(t, g.HasEdge(3, 2))
}

// TestParse_TrailingContentIgnored verifies Parse stops after the n-th
// adjacency line, whatever follows.
func TestParse_TrailingContentIgnored(t *testing.T) {
	const in = "2 2\n0 1\n1\n# comment\ngarbage here\n"

	g, err := codec.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
}

// TestParse_Malformed walks the failure taxonomy: each case pins the
// sentinel and, where it matters, the reported line number.
func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		sentinel error
		contains string
	}{
		{"empty input", "", codec.ErrInvalidInput, "missing header"},
		{"short header", "3\n", codec.ErrInvalidInput, "header"},
		{"non-integer vertex count", "x 2\n", codec.ErrInvalidInput, "vertex count"},
		{"zero vertices", "0 2\n", codec.ErrInvalidInput, "not positive"},
		{"negative vertices", "-3 2\n", codec.ErrInvalidInput, "not positive"},
		{"non-integer label count", "3 y\n", codec.ErrInvalidInput, "label count"},
		{"zero labels", "3 0\n0\n0\n0\n", core.ErrNoLabels, "line 1"},
		{"too many labels", "3 40\n0\n0\n0\n", core.ErrTooManyLabels, "line 1"},
		{"missing adjacency line", "2 2\n0\n", codec.ErrInvalidInput, "line 3"},
		{"blank adjacency line", "2 2\n\n0\n", codec.ErrInvalidInput, "line 2"},
		{"non-integer label", "2 2\nz\n0\n", codec.ErrInvalidInput, "label"},
		{"label out of range", "2 2\n5\n0\n", core.ErrLabelRange, "line 2"},
		{"non-integer neighbor", "2 2\n0 x\n0\n", codec.ErrInvalidInput, "neighbor"},
		{"neighbor out of range", "2 2\n0 7\n0\n", core.ErrVertexRange, "line 2"},
		{"self loop", "2 2\n0 0\n1\n", core.ErrSelfLoop, "line 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.Parse(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.sentinel)
			assert.ErrorContains(t, err, tc.contains)
		})
	}
}

// TestParse_NilReader verifies the guard sentinel.
func TestParse_NilReader(t *testing.T) {
	_, err := codec.Parse(nil)
	assert.ErrorIs(t, err, codec.ErrNilReader)
}

// TestWrite_Golden verifies the exact encoded bytes: sorted neighbors,
// single spaces, one trailing newline per line.
func TestWrite_Golden(t *testing.T) {
	g, err := core.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.AssignLabels([]int{0, 1, 1}))
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(0, 1))

	var buf bytes.Buffer
	require.NoError(t, codec.Write(&buf, g))

	assert.Equal(t, "3 2\n0 1 2\n1 0\n1 0\n", buf.String())
}

// TestWrite_NilArgs verifies the guard sentinels.
func TestWrite_NilArgs(t *testing.T) {
	g, err := core.New(2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, codec.Write(nil, g), codec.ErrNilWriter)

	var buf bytes.Buffer
	assert.ErrorIs(t, codec.Write(&buf, nil), codec.ErrNilGraph)
}

// TestRoundTrip_Buffer verifies Write∘Parse is the identity on a random
// sparse instance.
func TestRoundTrip_Buffer(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g, err := core.New(30, 4)
	require.NoError(t, err)
	require.NoError(t, g.DistributeLabelsEvenly(rng))
	for i := 0; i < 60; i++ {
		_, _, err = g.AddRandomEdge(rng)
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, codec.Write(&buf, g))

	back, err := codec.Parse(&buf)
	require.NoError(t, err)
	requireSameGraph(t, g, back)
}

// TestRoundTrip_File verifies WriteFile∘ParseFile through a real file,
// and that a second encoding of the decoded graph is byte-identical.
func TestRoundTrip_File(t *testing.T) {
	g, err := core.New(4, 2)
	require.NoError(t, err)
	require.NoError(t, g.AssignLabels([]int{0, 0, 1, 1}))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(0, 3))

	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, codec.WriteFile(path, g))

	back, err := codec.ParseFile(path)
	require.NoError(t, err)
	requireSameGraph(t, g, back)

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	var second bytes.Buffer
	require.NoError(t, codec.Write(&second, back))
	assert.Equal(t, string(first), second.String())
}

// TestParseFile_Missing verifies the os error is surfaced unwrapped
// enough for errors.Is.
func TestParseFile_Missing(t *testing.T) {
	_, err := codec.ParseFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
