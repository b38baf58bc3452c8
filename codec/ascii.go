// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/phat/boundary"
	"github.com/katalvlaran/phat/column"
	"github.com/katalvlaran/phat/pairs"
)

const asciiMatrixHeader = "# dim v1 v2 ... vN\n"

// writeMatrixASCII emits one line per column: the dimension, then the row
// indices in ascending order.
func writeMatrixASCII(w io.Writer, m *boundary.Matrix) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(asciiMatrixHeader); err != nil {
		return err
	}
	var (
		line []byte
		col  []column.Index
		err  error
	)
	for j := 0; j < m.NumCols(); j++ {
		d, _ := m.Dim(j)
		if col, err = m.AppendCol(j, col[:0]); err != nil {
			return err
		}
		line = strconv.AppendUint(line[:0], uint64(d), 10)
		for _, idx := range col {
			line = append(line, ' ')
			line = strconv.AppendInt(line, int64(idx), 10)
		}
		line = append(line, '\n')
		if _, err = bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// readMatrixASCII skips blank lines and '#' comments; every other line is
// one column.
func readMatrixASCII(r io.Reader, o Options) (*boundary.Matrix, error) {
	var (
		cols [][]column.Index
		dims []boundary.Dimension
	)
	err := scanLines(r, func(lineNo int, fields []string) error {
		d, err := strconv.ParseUint(fields[0], 10, 8)
		if err != nil {
			return fmt.Errorf("line %d: dimension %q: %w", lineNo, fields[0], ErrMalformed)
		}
		col := make([]column.Index, 0, len(fields)-1)
		for _, f := range fields[1:] {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return fmt.Errorf("line %d: index %q: %w", lineNo, f, ErrMalformed)
			}
			col = append(col, column.Index(v))
		}
		cols = append(cols, col)
		dims = append(dims, boundary.Dimension(d))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return boundary.FromColumns(cols, dims, o.matrixOpts...)
}

// writePairsASCII emits the pair count, then one "birth death" line per pair.
func writePairsASCII(w io.Writer, p *pairs.Pairs) error {
	bw := bufio.NewWriter(w)
	var line []byte
	line = strconv.AppendInt(line, int64(p.Len()), 10)
	line = append(line, '\n')
	for _, pr := range p.All() {
		line = strconv.AppendInt(line, int64(pr.Birth), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(pr.Death), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
		line = line[:0]
	}
	if len(line) > 0 {
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// readPairsASCII reads the count line and exactly that many pairs.
func readPairsASCII(r io.Reader) (*pairs.Pairs, error) {
	out := pairs.New()
	want := -1
	err := scanLines(r, func(lineNo int, fields []string) error {
		if want < 0 {
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 0 || len(fields) != 1 {
				return fmt.Errorf("line %d: pair count: %w", lineNo, ErrMalformed)
			}
			want = n

			return nil
		}
		if out.Len() == want {
			return fmt.Errorf("line %d: more than %d pairs: %w", lineNo, want, ErrMalformed)
		}
		if len(fields) != 2 {
			return fmt.Errorf("line %d: want 2 fields, got %d: %w", lineNo, len(fields), ErrMalformed)
		}
		b, errB := strconv.ParseInt(fields[0], 10, 64)
		d, errD := strconv.ParseInt(fields[1], 10, 64)
		if errB != nil || errD != nil {
			return fmt.Errorf("line %d: %w", lineNo, ErrMalformed)
		}
		out.Append(column.Index(b), column.Index(d))

		return nil
	})
	if err != nil {
		return nil, err
	}
	if want < 0 {
		want = 0
	}
	if out.Len() != want {
		return nil, fmt.Errorf("want %d pairs, got %d: %w", want, out.Len(), ErrMalformed)
	}

	return out, nil
}

// scanLines calls fn with the whitespace-separated fields of every
// non-blank, non-comment line.
func scanLines(r io.Reader, fn func(lineNo int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)
	for lineNo := 1; sc.Scan(); lineNo++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(lineNo, strings.Fields(text)); err != nil {
			return err
		}
	}

	return sc.Err()
}
