// SPDX-License-Identifier: MIT

// Package boundary provides the ordered GF(2) boundary matrix of a filtered
// cell complex, the input and in-place output of every reduction algorithm.
//
// What:
//
//   - Matrix: a sequence of (dimension, column) pairs. Column j holds the
//     indices of the codimension-1 faces of simplex j; all indices are < j.
//   - Representation: column storage strategy. Four "pivot" representations
//     keep compact sorted columns plus a per-worker expanded pivot column;
//     four plain representations reduce their columns directly.
//   - Workspace: per-worker handle used by reduction algorithms to read and
//     modify columns without locking.
//   - Dualize: anti-transpose (coboundary) of a matrix.
//
// Why:
//
//   - Representations trade memory against add cost; the reduction result is
//     identical for all of them (see Equal, Fingerprint).
//
// Errors:
//
//   - ErrOutOfRange for bad column indices, ErrUnsortedColumn for malformed
//     column input, ErrEmptyColumn for MaxIndex on an empty column,
//     ErrNotOrdered / ErrDimensionMismatch from the validators.
//
// Example:
//
//	m, err := boundary.FromColumns(
//	    [][]column.Index{{}, {}, {0, 1}},
//	    []boundary.Dimension{0, 0, 1},
//	    boundary.WithRepresentation(boundary.VectorHeap),
//	)
package boundary
