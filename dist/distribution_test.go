// Package dist_test verifies Distribution construction, the three distance
// metrics, and the metric name round-trip.
package dist_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/graphanon/dist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustDist builds a Distribution or fails the test immediately.
func mustDist(t *testing.T, counts ...int) dist.Distribution {
	t.Helper()
	d, err := dist.FromCounts(counts)
	require.NoError(t, err, "FromCounts(%v)", counts)
	return d
}

// TestFromCounts_Validation verifies the construction sentinels:
// empty vector, negative count, and zero total mass.
func TestFromCounts_Validation(t *testing.T) {
	_, err := dist.FromCounts(nil)
	assert.ErrorIs(t, err, dist.ErrEmptyDistribution, "nil counts must error")

	_, err = dist.FromCounts([]int{})
	assert.ErrorIs(t, err, dist.ErrEmptyDistribution, "empty counts must error")

	_, err = dist.FromCounts([]int{3, -1, 2})
	assert.ErrorIs(t, err, dist.ErrNegativeCount, "negative count must error")

	_, err = dist.FromCounts([]int{0, 0, 0})
	assert.ErrorIs(t, err, dist.ErrZeroMass, "all-zero counts must error")
}

// TestFromCounts_CopiesInput ensures the Distribution snapshots the counts
// slice instead of aliasing the caller's memory.
func TestFromCounts_CopiesInput(t *testing.T) {
	counts := []int{4, 6}
	d, err := dist.FromCounts(counts)
	require.NoError(t, err)

	counts[0] = 99
	assert.Equal(t, 4, d.Count(0), "mutating the source slice must not change the Distribution")
}

// TestDistribution_Accessors verifies Len, Mass, Count and Proportion,
// including the zero result for out-of-range labels.
func TestDistribution_Accessors(t *testing.T) {
	d := mustDist(t, 1, 3)

	assert.Equal(t, 2, d.Len(), "number of labels")
	assert.Equal(t, 4, d.Mass(), "total mass 1+3")
	assert.Equal(t, 1, d.Count(0))
	assert.Equal(t, 3, d.Count(1))
	assert.Equal(t, 0, d.Count(-1), "out-of-range count is zero")
	assert.Equal(t, 0, d.Count(2), "out-of-range count is zero")
	assert.InDelta(t, 0.25, d.Proportion(0), 1e-15)
	assert.InDelta(t, 0.75, d.Proportion(1), 1e-15)
	assert.Zero(t, d.Proportion(5), "out-of-range proportion is zero")
}

// TestDistance_Identity verifies that every metric reports distance zero
// between a distribution and itself, and between distributions that differ
// only in mass (normalization must erase population size).
func TestDistance_Identity(t *testing.T) {
	small := mustDist(t, 1, 1, 2)
	large := mustDist(t, 25, 25, 50)

	for _, m := range []dist.Metric{dist.TotalVariation, dist.Hellinger, dist.JensenShannon} {
		got, err := dist.Between(small, small, m)
		require.NoError(t, err, "metric %v on identical operands", m)
		assert.InDelta(t, 0.0, got, 1e-12, "%v: self-distance must be zero", m)

		got, err = dist.Between(small, large, m)
		require.NoError(t, err, "metric %v on scaled operands", m)
		assert.InDelta(t, 0.0, got, 1e-12, "%v: same proportions at different mass must be zero", m)
	}
}

// TestDistance_Symmetry verifies Between(a,b) == Between(b,a) for all metrics.
func TestDistance_Symmetry(t *testing.T) {
	a := mustDist(t, 5, 1, 2)
	b := mustDist(t, 2, 4, 2)

	for _, m := range []dist.Metric{dist.TotalVariation, dist.Hellinger, dist.JensenShannon} {
		ab, err := dist.Between(a, b, m)
		require.NoError(t, err)
		ba, err := dist.Between(b, a, m)
		require.NoError(t, err)
		assert.InDelta(t, ab, ba, 1e-15, "%v must be symmetric", m)
	}
}

// TestDistance_DisjointSupport verifies that fully disjoint distributions
// sit at the upper bound 1 under every metric.
func TestDistance_DisjointSupport(t *testing.T) {
	a := mustDist(t, 7, 0)
	b := mustDist(t, 0, 3)

	for _, m := range []dist.Metric{dist.TotalVariation, dist.Hellinger, dist.JensenShannon} {
		got, err := dist.Between(a, b, m)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-12, "%v: disjoint support must hit the bound", m)
	}
}

// TestDistance_TotalVariation pins the half-L1 definition on a hand-checked
// pair: (1,0) vs (1/2,1/2) has TV = (|1-1/2|+|0-1/2|)/2 = 1/2.
func TestDistance_TotalVariation(t *testing.T) {
	concentrated := mustDist(t, 2, 0)
	balanced := mustDist(t, 2, 2)

	got, err := concentrated.Distance(balanced)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-15, "TV((1,0),(1/2,1/2)) must be 1/2")
}

// TestDistance_Hellinger pins the Hellinger value on the same pair:
// sqrt(((1-sqrt(1/2))^2 + (0-sqrt(1/2))^2)/2) = sqrt(1 - sqrt(2)/2).
func TestDistance_Hellinger(t *testing.T) {
	concentrated := mustDist(t, 2, 0)
	balanced := mustDist(t, 2, 2)

	got, err := dist.Between(concentrated, balanced, dist.Hellinger)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(1-math.Sqrt2/2), got, 1e-12)
}

// TestDistance_JensenShannon checks that the normalized JS distance lands
// strictly inside (0,1) for partially overlapping distributions and matches
// the closed form for the hand-checked pair (1,0) vs (1/2,1/2).
func TestDistance_JensenShannon(t *testing.T) {
	concentrated := mustDist(t, 2, 0)
	balanced := mustDist(t, 2, 2)

	got, err := dist.Between(concentrated, balanced, dist.JensenShannon)
	require.NoError(t, err)

	// JSD((1,0),(1/2,1/2)) with mixture m=(3/4,1/4):
	//   KL(p||m) = ln(4/3); KL(q||m) = (ln(2/3) + ln 2)/2.
	jsd := (math.Log(4.0/3.0) + (math.Log(2.0/3.0)+math.Ln2)/2) / 2
	want := math.Sqrt(jsd / math.Ln2)

	assert.InDelta(t, want, got, 1e-12)
	assert.Greater(t, got, 0.0, "partial overlap must not be zero")
	assert.Less(t, got, 1.0, "partial overlap must not hit the bound")
}

// TestBetween_DimensionMismatch ensures comparing distributions over
// different label alphabets errors instead of silently truncating.
func TestBetween_DimensionMismatch(t *testing.T) {
	a := mustDist(t, 1, 1)
	b := mustDist(t, 1, 1, 1)

	_, err := dist.Between(a, b, dist.TotalVariation)
	assert.ErrorIs(t, err, dist.ErrDimensionMismatch)

	_, err = a.Distance(b)
	assert.ErrorIs(t, err, dist.ErrDimensionMismatch, "Distance shares the Between contract")
}

// TestBetween_ZeroValueOperand ensures the zero-value Distribution is
// rejected rather than treated as an empty population.
func TestBetween_ZeroValueOperand(t *testing.T) {
	a := mustDist(t, 1, 1)

	_, err := dist.Between(a, dist.Distribution{}, dist.TotalVariation)
	assert.ErrorIs(t, err, dist.ErrEmptyDistribution)

	_, err = dist.Between(dist.Distribution{}, a, dist.TotalVariation)
	assert.ErrorIs(t, err, dist.ErrEmptyDistribution)
}

// TestBetween_UnknownMetric ensures out-of-enum metric values error.
func TestBetween_UnknownMetric(t *testing.T) {
	a := mustDist(t, 1, 1)

	_, err := dist.Between(a, a, dist.Metric(42))
	assert.ErrorIs(t, err, dist.ErrUnknownMetric)
}

// TestMetric_String verifies the canonical names and the fallback form.
func TestMetric_String(t *testing.T) {
	assert.Equal(t, "total-variation", dist.TotalVariation.String())
	assert.Equal(t, "hellinger", dist.Hellinger.String())
	assert.Equal(t, "jensen-shannon", dist.JensenShannon.String())
	assert.Equal(t, "metric(42)", dist.Metric(42).String())
}

// TestParseMetric verifies canonical names, short aliases, case and
// whitespace tolerance, and the unknown-name sentinel.
func TestParseMetric(t *testing.T) {
	cases := []struct {
		in   string
		want dist.Metric
	}{
		{"total-variation", dist.TotalVariation},
		{"tv", dist.TotalVariation},
		{"TV", dist.TotalVariation},
		{"hellinger", dist.Hellinger},
		{"h", dist.Hellinger},
		{" jensen-shannon ", dist.JensenShannon},
		{"js", dist.JensenShannon},
	}
	for _, tc := range cases {
		got, err := dist.ParseMetric(tc.in)
		require.NoError(t, err, "ParseMetric(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseMetric(%q)", tc.in)
	}

	_, err := dist.ParseMetric("euclidean")
	assert.ErrorIs(t, err, dist.ErrUnknownMetric)
}
