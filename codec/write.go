// File: codec/write.go
// Role: Text encoding: Write, WriteFile.
// Determinism: neighbors are emitted ascending on every adjacency line,
// so equal graphs produce byte-identical files.
package codec

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/graphanon/core"
)

// Write encodes g to w in the codec text format. Write errors from the
// underlying writer surface once, at the final flush.
func Write(w io.Writer, g *core.Graph) error {
	if w == nil {
		return ErrNilWriter
	}
	if g == nil {
		return ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(g.VertexCount()))
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(g.LabelCount()))
	bw.WriteByte('\n')

	for u := 0; u < g.VertexCount(); u++ {
		label, err := g.Label(u)
		if err != nil {
			return fmt.Errorf("codec: vertex %d: %w", u, err)
		}
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("codec: vertex %d: %w", u, err)
		}
		bw.WriteString(strconv.Itoa(label))
		for _, v := range nbrs {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("codec: write: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and encodes g into it.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec: %w", err)
	}
	if err = Write(f, g); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("codec: %w", err)
	}

	return nil
}
