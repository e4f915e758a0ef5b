// Package codec reads and writes labelled graphs in a whitespace-separated
// text format.
//
// What:
//
//   - Format: a header line "n l" (vertex count, label count), followed by
//     exactly n adjacency lines in vertex order. Line i+2 describes vertex
//     i: its label first, then the ids of its neighbors.
//   - Parse / ParseFile decode the format into a core.Graph. Neighbor
//     listings may be mirrored (edge {u,v} on both lines) or one-sided;
//     duplicates are absorbed. Content after the n-th adjacency line is
//     ignored.
//   - Write / WriteFile encode a graph deterministically: neighbors ascend
//     on every line, so equal graphs produce byte-identical files.
//
// Why:
//
//   - The anonymization pipeline is offline: graphs arrive as flat files,
//     get repaired in memory, and leave as flat files the same tooling can
//     diff and re-read.
//
// Errors:
//
//   - ErrInvalidInput: malformed text (missing or short header, a
//     non-integer field, a non-positive vertex count, fewer adjacency
//     lines than the header promises). Always wrapped with the offending
//     line number.
//   - ErrNilReader / ErrNilWriter / ErrNilGraph: nil arguments.
//   - Label or neighbor ids outside the declared ranges surface the core
//     sentinels (core.ErrLabelRange, core.ErrVertexRange, core.ErrSelfLoop)
//     wrapped with the line number.
//
// Complexity: O(n + m) time for both directions; Parse holds one line in
// memory at a time.
package codec
