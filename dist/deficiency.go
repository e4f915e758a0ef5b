package dist

// Deficiencies compares d (a closed-neighborhood distribution) against the
// global distribution and returns the set of labels whose proportion in d
// falls short of the global proportion by more than alpha/l, where l is
// the number of labels. Bit i set means: inserting one more neighbor of
// label i moves d strictly closer to satisfying the alpha bound.
//
// The per-label slack alpha/l makes the empty mask a proof of proximity:
// the total-variation distance equals the sum of the positive per-label
// shortfalls, so when no single shortfall exceeds alpha/l the sum over l
// labels cannot exceed alpha. An empty result therefore guarantees d is
// alpha-proximal to global under TotalVariation.
//
// Returns ErrDimensionMismatch when the lengths differ, ErrAlphaRange for
// alpha outside [0,1], and ErrMaskWidth when the label alphabet does not
// fit a LabelSet.
// Complexity: O(l).
func (d Distribution) Deficiencies(global Distribution, alpha float64) (LabelSet, error) {
	if d.Len() == 0 || global.Len() == 0 {
		return 0, ErrEmptyDistribution
	}
	if d.Len() != global.Len() {
		return 0, ErrDimensionMismatch
	}
	if alpha < 0 || alpha > 1 {
		return 0, ErrAlphaRange
	}
	if d.Len() > MaskWidth {
		return 0, ErrMaskWidth
	}

	slack := alpha / float64(d.Len())

	var defs LabelSet
	for i := range d.props {
		if global.props[i]-d.props[i] > slack {
			defs = defs.Add(i)
		}
	}
	return defs, nil
}
