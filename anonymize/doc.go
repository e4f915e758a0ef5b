// Package anonymize implements the proximity engine: it audits a labelled
// graph for neighborhood-attribute disclosure and repairs it by inserting
// edges until every vertex blends into the global label mix.
//
// What:
//
//   - IsAlphaProximal reports whether the worst vertex's closed
//     neighborhood stays within statistical distance alpha of the global
//     label distribution.
//   - Exposure computes the full per-vertex distance profile (max, mean,
//     standard deviation) for auditing and reporting.
//   - Hopeful repairs by inserting uniformly random edges until the graph
//     is alpha-proximal or complete.
//   - Greedy repairs by targeted matchmaking: vertices that are deficient
//     in some label are paired with later pool entries that carry that
//     label and are reciprocally deficient in theirs, so one edge serves
//     both endpoints. A zero-progress iteration falls back to one random
//     edge.
//   - Both strategies only ever add edges; labels are never touched.
//
// Why:
//
//   - A vertex whose neighborhood label mix mirrors the whole graph's
//     reveals nothing about its own attribute, even to an adversary who
//     knows the neighborhood structure.
//   - Greedy converges with far fewer edges than Hopeful on skewed
//     graphs; Hopeful is the baseline both for comparison and for tiny
//     instances.
//
// Determinism:
//
//   - All randomness flows from WithSeed or WithRand (seed 0 selects a
//     fixed default seed). Identical inputs and seeds reproduce identical
//     edge insertions.
//
// Complexity (n vertices, m edges, l labels):
//
//   - IsAlphaProximal / Exposure: O(n·(deg + l)) = O(m + n·l).
//   - One greedy iteration: O(m + n·l) for the pool plus O(p²·l) worst
//     case matching over a pool of p deficient vertices.
//   - Hopeful: one proximity sweep per inserted edge.
//
// Errors (sentinels; branch with errors.Is):
//
//   - ErrNilGraph: nil *core.Graph.
//   - ErrAlphaRange: alpha outside [0,1].
//   - ErrOptionViolation: an option carried an invalid value.
//   - Context errors from WithContext pass through unchanged; the graph
//     keeps whatever edges were inserted before cancellation.
package anonymize
