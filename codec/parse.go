// File: codec/parse.go
// Role: Text decoding: Parse, ParseFile.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphanon/core"
)

// Parse decodes a labelled graph from r.
//
// The first line must read "n l". Exactly n adjacency lines follow, one
// per vertex in id order: the vertex label, then zero or more neighbor
// ids, whitespace-separated. Mirrored or duplicated neighbor listings are
// absorbed; anything after the n-th adjacency line is ignored.
//
// Malformed text returns ErrInvalidInput wrapped with the offending line
// number. Labels or neighbor ids outside the declared ranges surface the
// core sentinels, wrapped the same way.
func Parse(r io.Reader) (*core.Graph, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBuf), maxLineBuf)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("codec: read header: %w", err)
		}
		return nil, fmt.Errorf("codec: line 1: missing header: %w", ErrInvalidInput)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 {
		return nil, fmt.Errorf("codec: line 1: header wants \"n l\", got %d fields: %w",
			len(fields), ErrInvalidInput)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("codec: line 1: vertex count %q: %w", fields[0], ErrInvalidInput)
	}
	if n <= 0 {
		return nil, fmt.Errorf("codec: line 1: vertex count %d is not positive: %w",
			n, ErrInvalidInput)
	}
	l, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("codec: line 1: label count %q: %w", fields[1], ErrInvalidInput)
	}
	g, err := core.New(n, l)
	if err != nil {
		return nil, fmt.Errorf("codec: line 1: %w", err)
	}

	for u := 0; u < n; u++ {
		lineNo := u + 2
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, fmt.Errorf("codec: read line %d: %w", lineNo, err)
			}
			return nil, fmt.Errorf("codec: line %d: missing adjacency line for vertex %d: %w",
				lineNo, u, ErrInvalidInput)
		}
		fields = strings.Fields(sc.Text())
		if len(fields) == 0 {
			return nil, fmt.Errorf("codec: line %d: missing label for vertex %d: %w",
				lineNo, u, ErrInvalidInput)
		}
		label, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("codec: line %d: label %q: %w", lineNo, fields[0], ErrInvalidInput)
		}
		if err = g.SetLabel(u, label); err != nil {
			return nil, fmt.Errorf("codec: line %d: label %d: %w", lineNo, label, err)
		}
		for _, field := range fields[1:] {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("codec: line %d: neighbor %q: %w", lineNo, field, ErrInvalidInput)
			}
			if err = g.AddEdge(u, v); err != nil && !errors.Is(err, core.ErrEdgeExists) {
				return nil, fmt.Errorf("codec: line %d: edge {%d,%d}: %w", lineNo, u, v, err)
			}
		}
	}

	return g, nil
}

// ParseFile opens path and decodes it with Parse, prefixing any decode
// error with the path.
func ParseFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
