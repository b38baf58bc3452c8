// SPDX-License-Identifier: MIT
// Package reduction: sentinel error set.
// Precondition failures of the matrix are reported with the boundary package
// sentinels (boundary.ErrNotOrdered, boundary.ErrDimensionMismatch) wrapped
// with the algorithm name.

package reduction

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAlgorithm indicates an unrecognized Algorithm value or name.
	ErrUnknownAlgorithm = errors.New("reduction: unknown algorithm")

	// ErrNilMatrix indicates a nil *boundary.Matrix argument.
	ErrNilMatrix = errors.New("reduction: nil matrix")
)

// reductionErrorf tags err with the operation and algorithm.
func reductionErrorf(tag string, a Algorithm, err error) error {
	return fmt.Errorf("%s %s: %w", tag, a, err)
}
