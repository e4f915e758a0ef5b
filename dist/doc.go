// Package dist provides label-distribution snapshots and the statistical
// machinery the anonymization engine reasons with: normalized distances
// between distributions and per-label deficiency masks.
//
// What:
//
//   - Distribution wraps an immutable vector of per-label counts over some
//     vertex population (the whole graph, or one closed neighborhood).
//   - Between compares two distributions of equal length under a Metric
//     (TotalVariation, Hellinger or JensenShannon). Every metric is
//     symmetric and bounded in [0,1], with 0 iff the normalized
//     distributions are identical.
//   - Deficiencies reduces a neighborhood-vs-global comparison to a
//     LabelSet bitmask of labels under-represented beyond what alpha
//     tolerates, the signal the greedy repair strategy targets.
//
// Why:
//
//   - Privacy auditing: a vertex whose neighborhood labels mirror the
//     global mix leaks nothing about its own label.
//   - Repair planning: the mask names *which* labels an edge insertion
//     should supply, instead of blind random search.
//
// Complexity:
//
//   - FromCounts:    O(l) time and memory (l = number of labels).
//   - Between:       O(l).
//   - Deficiencies:  O(l).
//   - LabelSet ops:  O(1).
//
// Errors:
//
//   - ErrEmptyDistribution: counts vector has length zero.
//   - ErrNegativeCount: a per-label count is negative.
//   - ErrZeroMass: all counts are zero (no population to normalize).
//   - ErrDimensionMismatch: compared distributions differ in length.
//   - ErrAlphaRange: alpha outside the closed interval [0,1].
//   - ErrMaskWidth: more labels than LabelSet can address.
//   - ErrUnknownMetric: metric value not recognized.
package dist
