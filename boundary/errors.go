// SPDX-License-Identifier: MIT
// Package boundary: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with an
// operation tag); callers match them via errors.Is. Panics are reserved for
// programmer errors in option constructors.

package boundary

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a column index outside [0, NumCols()).
	// Public indexers (Dim/Col/SetCol/...) MUST return this, not panic.
	ErrOutOfRange = errors.New("boundary: column index out of range")

	// ErrNotOrdered indicates a column referencing a row index that is not
	// strictly smaller than its own index.
	ErrNotOrdered = errors.New("boundary: matrix is not ordered")

	// ErrEmptyColumn is returned by MaxIndex on a column without entries.
	ErrEmptyColumn = errors.New("boundary: column is empty")

	// ErrUnsortedColumn indicates column input that is not strictly
	// ascending or contains negative indices.
	ErrUnsortedColumn = errors.New("boundary: column entries not strictly ascending")

	// ErrDimensionMismatch indicates inconsistent lengths (columns vs dims)
	// or a boundary entry whose dimension is not the column dimension minus one.
	ErrDimensionMismatch = errors.New("boundary: dimension mismatch")

	// ErrUnknownRepresentation indicates an unrecognized representation name.
	ErrUnknownRepresentation = errors.New("boundary: unknown representation")
)

// boundaryErrorf tags err with the failing operation.
func boundaryErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexError reports an out-of-range column index.
func indexError(tag string, j, n int) error {
	return fmt.Errorf("%s: column %d of %d: %w", tag, j, n, ErrOutOfRange)
}
