// SPDX-License-Identifier: MIT

package boundary

import "github.com/katalvlaran/phat/column"

// Dualize returns the anti-transpose of m (the coboundary matrix), stored with
// the same representation. m is left unchanged.
//
// Implementation:
//   - Stage 1: validate m is ordered (ErrNotOrdered otherwise).
//   - Stage 2: for every entry r of column j append n-1-j to dual column
//     n-1-r. Columns are visited in ascending j, so each dual column receives
//     its entries in descending order.
//   - Stage 3: reverse every dual column; dual dimension of column n-1-j is
//     MaxDim - dim(j).
//
// The dual of an ordered matrix is ordered; applying Dualize twice restores m
// when dimensions start at 0.
//
// Complexity: O(n + NumEntries) time and memory.
func Dualize(m *Matrix) (*Matrix, error) {
	if err := m.Validate(); err != nil {
		return nil, boundaryErrorf("Dualize", err)
	}
	n := len(m.cols)
	dual := make([][]column.Index, n)
	var buf []column.Index
	for j, c := range m.cols {
		buf = c.AppendTo(buf[:0])
		for _, r := range buf {
			dual[n-1-int(r)] = append(dual[n-1-int(r)], column.Index(n-1-j))
		}
	}
	maxDim := m.MaxDim()
	dims := make([]Dimension, n)
	for j, d := range m.dims {
		dims[n-1-j] = maxDim - d
	}

	out := New(WithRepresentation(m.rep))
	out.SetNumCols(n)
	for j, c := range dual {
		for a, b := 0, len(c)-1; a < b; a, b = a+1, b-1 {
			c[a], c[b] = c[b], c[a]
		}
		out.cols[j].Set(c)
	}
	copy(out.dims, dims)

	return out, nil
}
