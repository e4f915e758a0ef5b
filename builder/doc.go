// SPDX-License-Identifier: MIT
// Package: graphanon/builder
//
// doc.go — package overview.
//
// Package builder constructs labelled graphs with canonical topologies
// for tests, benchmarks and the CLI generator.
//
// Constructors:
//   - Complete(n, l): the complete simple graph K_n, the always-proximal
//     reference topology.
//   - Random(n, l, p, rng): Erdős–Rényi G(n,p), each unordered pair
//     included independently with probability p.
//
// Labelling is orthogonal to construction: every constructor returns a
// graph with all labels zero, and callers assign labels afterwards with
// the AssignLabels or DistributeLabelsEvenly methods on core.Graph.
//
// Error policy:
//   - Only sentinel errors are exposed; callers branch with errors.Is.
//   - Size checks come first (ErrTooFewVertices), then probability range
//     (ErrInvalidProbability), then RNG presence (ErrNeedRandSource).
//   - Label-alphabet violations surface the core sentinels unchanged.
//
// Determinism: for a fixed seed the sampled edge set is reproducible; the
// Bernoulli trial order is fixed (i ascending, then j ascending, i < j).
package builder
