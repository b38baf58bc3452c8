// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/phat/boundary"
	"github.com/katalvlaran/phat/column"
	"github.com/katalvlaran/phat/pairs"
)

// maxPrealloc bounds capacity taken from untrusted length fields; longer
// inputs still decode, growing as they go.
const maxPrealloc = 1 << 16

type int64Writer struct {
	w   *bufio.Writer
	buf [8]byte
	err error
}

func (iw *int64Writer) put(v int64) {
	if iw.err != nil {
		return
	}
	binary.LittleEndian.PutUint64(iw.buf[:], uint64(v))
	_, iw.err = iw.w.Write(iw.buf[:])
}

func (iw *int64Writer) flush() error {
	if iw.err != nil {
		return iw.err
	}

	return iw.w.Flush()
}

type int64Reader struct {
	r   io.Reader
	buf [8]byte
}

func (ir *int64Reader) get(what string) (int64, error) {
	if _, err := io.ReadFull(ir.r, ir.buf[:]); err != nil {
		return 0, truncated(what, err)
	}

	return int64(binary.LittleEndian.Uint64(ir.buf[:])), nil
}

func (ir *int64Reader) count(what string) (int, error) {
	v, err := ir.get(what)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative %s %d: %w", what, v, ErrMalformed)
	}

	return int(v), nil
}

// writeMatrixBinary layout: numCols, then per column dim, size, entries.
func writeMatrixBinary(w io.Writer, m *boundary.Matrix) error {
	iw := &int64Writer{w: bufio.NewWriter(w)}
	iw.put(int64(m.NumCols()))
	var col []column.Index
	for j := 0; j < m.NumCols(); j++ {
		d, _ := m.Dim(j)
		col, _ = m.AppendCol(j, col[:0])
		iw.put(int64(d))
		iw.put(int64(len(col)))
		for _, idx := range col {
			iw.put(int64(idx))
		}
	}

	return iw.flush()
}

func readMatrixBinary(r io.Reader, o Options) (*boundary.Matrix, error) {
	ir := &int64Reader{r: bufio.NewReader(r)}
	n, err := ir.count("column count")
	if err != nil {
		return nil, err
	}
	cols := make([][]column.Index, 0, min(n, maxPrealloc))
	dims := make([]boundary.Dimension, 0, min(n, maxPrealloc))
	for j := 0; j < n; j++ {
		d, err := ir.get("dimension")
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", j, err)
		}
		if d < 0 || d > 255 {
			return nil, fmt.Errorf("column %d: dimension %d: %w", j, d, ErrMalformed)
		}
		size, err := ir.count("column size")
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", j, err)
		}
		col := make([]column.Index, 0, min(size, maxPrealloc))
		for k := 0; k < size; k++ {
			v, err := ir.get("entry")
			if err != nil {
				return nil, fmt.Errorf("column %d: %w", j, err)
			}
			col = append(col, column.Index(v))
		}
		cols = append(cols, col)
		dims = append(dims, boundary.Dimension(d))
	}

	return boundary.FromColumns(cols, dims, o.matrixOpts...)
}

// writePairsBinary layout: numPairs, then birth, death per pair.
func writePairsBinary(w io.Writer, p *pairs.Pairs) error {
	iw := &int64Writer{w: bufio.NewWriter(w)}
	iw.put(int64(p.Len()))
	for _, pr := range p.All() {
		iw.put(int64(pr.Birth))
		iw.put(int64(pr.Death))
	}

	return iw.flush()
}

func readPairsBinary(r io.Reader) (*pairs.Pairs, error) {
	ir := &int64Reader{r: bufio.NewReader(r)}
	n, err := ir.count("pair count")
	if err != nil {
		return nil, err
	}
	out := pairs.New()
	for i := 0; i < n; i++ {
		b, err := ir.get("birth")
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		d, err := ir.get("death")
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		out.Append(column.Index(b), column.Index(d))
	}

	return out, nil
}
