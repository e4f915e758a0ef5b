// Package dist defines sentinel errors and the Metric enumeration for
// label-distribution comparison.
package dist

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for distribution construction and comparison.
var (
	// ErrEmptyDistribution is returned when a counts vector has length zero.
	ErrEmptyDistribution = errors.New("dist: distribution has no labels")

	// ErrNegativeCount is returned when a per-label count is negative.
	ErrNegativeCount = errors.New("dist: negative label count")

	// ErrZeroMass is returned when every count is zero; a distribution over
	// an empty population cannot be normalized.
	ErrZeroMass = errors.New("dist: distribution mass is zero")

	// ErrDimensionMismatch is returned when two compared distributions do
	// not share the same number of labels.
	ErrDimensionMismatch = errors.New("dist: distributions have different label counts")

	// ErrAlphaRange is returned when alpha lies outside [0,1].
	ErrAlphaRange = errors.New("dist: alpha outside [0,1]")

	// ErrMaskWidth is returned when a distribution carries more labels than
	// a LabelSet can address (see MaskWidth).
	ErrMaskWidth = errors.New("dist: label count exceeds deficiency mask width")

	// ErrUnknownMetric is returned for a Metric value outside the enum.
	ErrUnknownMetric = errors.New("dist: unknown metric")
)

// Metric selects the statistical distance used to compare two normalized
// label distributions. Every metric is symmetric, evaluates to 0 iff the
// normalized distributions are identical, and is bounded in [0,1].
type Metric int

const (
	// TotalVariation is half the L1 distance between the normalized
	// distributions. It is the default, and the measure the deficiency
	// analysis is calibrated against.
	TotalVariation Metric = iota

	// Hellinger is the Hellinger distance (1/√2 · L2 distance between the
	// element-wise square roots).
	Hellinger

	// JensenShannon is the Jensen–Shannon distance normalized to [0,1]:
	// √(JSD(p,q)/ln 2), where JSD uses the natural logarithm.
	JensenShannon
)

// String returns the canonical lowercase name of the metric, or
// "metric(<n>)" for values outside the enum.
func (m Metric) String() string {
	switch m {
	case TotalVariation:
		return "total-variation"
	case Hellinger:
		return "hellinger"
	case JensenShannon:
		return "jensen-shannon"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// ParseMetric maps a (case-insensitive) metric name to its Metric value.
// Accepted names are the String() forms plus the short aliases
// "tv", "h" and "js". Unknown names yield ErrUnknownMetric.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "total-variation", "totalvariation", "tv":
		return TotalVariation, nil
	case "hellinger", "h":
		return Hellinger, nil
	case "jensen-shannon", "jensenshannon", "js":
		return JensenShannon, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}
