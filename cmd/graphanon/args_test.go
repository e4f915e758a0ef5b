package main

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/katalvlaran/graphanon/anonymize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveStrategy verifies the name-to-function dispatch, case
// folding included.
func TestResolveStrategy(t *testing.T) {
	greedy, err := resolveStrategy("greedy")
	require.NoError(t, err)
	assert.Equal(t, reflect.ValueOf(anonymize.Greedy).Pointer(), reflect.ValueOf(greedy).Pointer())

	hopeful, err := resolveStrategy("HOPEFUL")
	require.NoError(t, err)
	assert.Equal(t, reflect.ValueOf(anonymize.Hopeful).Pointer(), reflect.ValueOf(hopeful).Pointer())

	_, err = resolveStrategy("annealing")
	assert.ErrorContains(t, err, "unknown strategy")
}

// TestSeedFor verifies per-file seed derivation keeps zero as "engine
// default" and offsets everything else by the file index.
func TestSeedFor(t *testing.T) {
	assert.Equal(t, int64(0), seedFor(0, 5))
	assert.Equal(t, int64(100), seedFor(100, 0))
	assert.Equal(t, int64(103), seedFor(100, 3))
}

// TestDestinationFor verifies output routing: explicit file, stdout
// marker, per-input naming under --out-dir, stdout fallback.
func TestDestinationFor(t *testing.T) {
	assert.Equal(t, "out.txt", destinationFor("in/a.txt", "out.txt", ""))
	assert.Equal(t, "", destinationFor("in/a.txt", "-", ""))
	assert.Equal(t, filepath.Join("repaired", "a.txt"), destinationFor("in/a.txt", "", "repaired"))
	assert.Equal(t, "", destinationFor("a.txt", "", ""))
}
