// File: codec/types.go
// Role: Sentinel errors and line-handling limits for the text codec.
package codec

import "errors"

// Line-buffer sizing for Parse. Adjacency lines grow with vertex degree,
// so the scanner buffer must be allowed to grow well past bufio's default
// token size.
const (
	initialLineBuf = 64 * 1024
	maxLineBuf     = 64 * 1024 * 1024
)

var (
	// ErrInvalidInput reports malformed text: a missing or short header,
	// a non-integer field, a non-positive vertex count, or fewer
	// adjacency lines than the header declares.
	ErrInvalidInput = errors.New("codec: invalid input")

	// ErrNilReader is returned by Parse when the reader is nil.
	ErrNilReader = errors.New("codec: nil reader")

	// ErrNilWriter is returned by Write when the writer is nil.
	ErrNilWriter = errors.New("codec: nil writer")

	// ErrNilGraph is returned by Write and WriteFile when the graph is nil.
	ErrNilGraph = errors.New("codec: nil graph")
)
