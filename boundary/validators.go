// SPDX-License-Identifier: MIT

// Package boundary: structural validators.
// Each validator returns a sentinel from errors.go, wrapped with the failing
// column where useful, and never panics.
package boundary

import (
	"fmt"

	"github.com/katalvlaran/phat/column"
)

// ValidateColumn checks that entries are non-negative and strictly ascending.
//
// Complexity: O(len(entries)).
func ValidateColumn(entries []column.Index) error {
	prev := column.NoIndex
	for _, e := range entries {
		if e <= prev {
			return ErrUnsortedColumn
		}
		prev = e
	}

	return nil
}

func indexedError(j int, err error) error {
	return fmt.Errorf("column %d: %w", j, err)
}

// Validate checks the ordered-complex invariant: every entry of column j is
// strictly smaller than j. Reduction requires it.
//
// Complexity: O(NumCols) pivot queries.
func (m *Matrix) Validate() error {
	for j, c := range m.cols {
		if low := c.Max(); low != column.NoIndex && low >= column.Index(j) {
			return boundaryErrorf("Validate",
				fmt.Errorf("column %d has entry %d: %w", j, low, ErrNotOrdered))
		}
	}

	return nil
}

// ValidateDimensions checks that every entry of a column of dimension d
// refers to a column of dimension d-1. Entries past the last column fail
// with ErrNotOrdered.
// Dimension-partitioned reductions (twist, chunk, spectral sequence) require it.
//
// Complexity: O(NumEntries).
func (m *Matrix) ValidateDimensions() error {
	var buf []column.Index
	for j, c := range m.cols {
		buf = c.AppendTo(buf[:0])
		for _, e := range buf {
			if int(e) >= len(m.dims) {
				return boundaryErrorf("ValidateDimensions",
					fmt.Errorf("column %d has entry %d: %w", j, e, ErrNotOrdered))
			}
			if int(m.dims[e])+1 != int(m.dims[j]) {
				return boundaryErrorf("ValidateDimensions",
					fmt.Errorf("column %d (dim %d) has entry %d (dim %d): %w",
						j, m.dims[j], e, m.dims[e], ErrDimensionMismatch))
			}
		}
	}

	return nil
}
