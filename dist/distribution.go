package dist

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Distribution is an immutable snapshot of label frequencies over some
// fixed vertex population: counts[i] vertices carry label i. Instances are
// value objects: construct, compare, discard. Two distributions are
// comparable only when they share the same length.
type Distribution struct {
	counts []int
	props  []float64 // counts normalized by total mass, precomputed
	total  int
}

// FromCounts builds a Distribution from one count per label. The slice is
// copied, so later mutation of counts does not affect the Distribution.
// Returns ErrEmptyDistribution for a zero-length slice, ErrNegativeCount
// if any count is negative, and ErrZeroMass if every count is zero.
// Complexity: O(l) time and memory.
func FromCounts(counts []int) (Distribution, error) {
	if len(counts) == 0 {
		return Distribution{}, ErrEmptyDistribution
	}

	total := 0
	for _, c := range counts {
		if c < 0 {
			return Distribution{}, ErrNegativeCount
		}
		total += c
	}
	if total == 0 {
		return Distribution{}, ErrZeroMass
	}

	own := make([]int, len(counts))
	copy(own, counts)

	props := make([]float64, len(counts))
	mass := float64(total)
	for i, c := range own {
		props[i] = float64(c) / mass
	}

	return Distribution{counts: own, props: props, total: total}, nil
}

// Len returns the number of labels the distribution spans.
func (d Distribution) Len() int { return len(d.counts) }

// Mass returns the population size: the sum of all counts.
func (d Distribution) Mass() int { return d.total }

// Count returns the raw count of label i, or 0 when i is out of range.
func (d Distribution) Count(i int) int {
	if i < 0 || i >= len(d.counts) {
		return 0
	}
	return d.counts[i]
}

// Proportion returns the normalized frequency of label i in [0,1], or 0
// when i is out of range.
func (d Distribution) Proportion(i int) float64 {
	if i < 0 || i >= len(d.props) {
		return 0
	}
	return d.props[i]
}

// Distance returns the total-variation distance between d and o, half the
// sum of absolute differences of per-label proportions. It is symmetric,
// 0 iff the normalized distributions are identical, and bounded in [0,1].
// Returns ErrDimensionMismatch when the lengths differ.
// Complexity: O(l).
func (d Distribution) Distance(o Distribution) (float64, error) {
	return Between(d, o, TotalVariation)
}

// Between returns the distance between a and b under metric m.
// All metrics share the Distance contract (symmetry, zero iff equal,
// [0,1] bound); see Metric for the individual definitions.
// Returns ErrDimensionMismatch when the lengths differ and
// ErrUnknownMetric for an out-of-enum metric.
// Complexity: O(l).
func Between(a, b Distribution, m Metric) (float64, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return 0, ErrEmptyDistribution
	}
	if a.Len() != b.Len() {
		return 0, ErrDimensionMismatch
	}

	switch m {
	case TotalVariation:
		// ½·L1 over normalized proportions.
		return clamp01(floats.Distance(a.props, b.props, 1) / 2), nil
	case Hellinger:
		return clamp01(stat.Hellinger(a.props, b.props)), nil
	case JensenShannon:
		// stat.JensenShannon yields the divergence in nats, bounded by ln 2;
		// √(JSD/ln 2) is the matching distance scaled onto [0,1].
		div := stat.JensenShannon(a.props, b.props)
		if div < 0 {
			div = 0 // guard against negative rounding residue
		}
		return clamp01(math.Sqrt(div / math.Ln2)), nil
	default:
		return 0, ErrUnknownMetric
	}
}

// clamp01 pins floating-point residue back onto the documented [0,1] range.
func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
