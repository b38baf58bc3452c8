// SPDX-License-Identifier: MIT

// Package persistence computes persistence pairs of a boundary matrix:
// it runs a reduction and reads the pairs off the pivots.
//
// What:
//
//   - Compute: reduce the matrix in place, return pairs in death order.
//   - ComputeCopy: same, leaving the input untouched.
//   - ComputeDualized: reduce the anti-transpose instead and map the pairs
//     back. Often much faster on complexes with many high-dimensional cells.
//
// Essential classes (births that never die) are not reported.
package persistence

import (
	"fmt"

	"github.com/katalvlaran/phat/boundary"
	"github.com/katalvlaran/phat/column"
	"github.com/katalvlaran/phat/pairs"
	"github.com/katalvlaran/phat/reduction"
)

// Compute reduces m in place with algo and returns one pair (low(j), j) for
// every nonempty reduced column j, in increasing j (death) order. This is not
// the birth order of ComputeDualized; call Sort before comparing the two
// with Pairs.Equal, which is order sensitive.
//
// Errors are the ones of reduction.Reduce; m is unmodified on error.
func Compute(m *boundary.Matrix, algo reduction.Algorithm, opts ...reduction.Option) (*pairs.Pairs, error) {
	if err := reduction.Reduce(m, algo, opts...); err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	return extract(m), nil
}

// ComputeCopy is Compute on a clone of m.
func ComputeCopy(m *boundary.Matrix, algo reduction.Algorithm, opts ...reduction.Option) (*pairs.Pairs, error) {
	if m == nil {
		return nil, fmt.Errorf("ComputeCopy: %w", reduction.ErrNilMatrix)
	}

	return Compute(m.Clone(), algo, opts...)
}

// ComputeDualized reduces the anti-transpose of m and maps every dual pair
// (b, d) to (n-1-d, n-1-b). The result is sorted by birth then death and
// equals the sorted result of Compute. m is not modified.
func ComputeDualized(m *boundary.Matrix, algo reduction.Algorithm, opts ...reduction.Option) (*pairs.Pairs, error) {
	if m == nil {
		return nil, fmt.Errorf("ComputeDualized: %w", reduction.ErrNilMatrix)
	}
	dual, err := boundary.Dualize(m)
	if err != nil {
		return nil, fmt.Errorf("ComputeDualized: %w", err)
	}
	if err := reduction.Reduce(dual, algo, opts...); err != nil {
		return nil, fmt.Errorf("ComputeDualized: %w", err)
	}
	dp := extract(dual)
	last := column.Index(m.NumCols() - 1)
	out := pairs.New()
	for _, p := range dp.All() {
		out.Append(last-p.Death, last-p.Birth)
	}
	out.Sort()

	return out, nil
}

// extract scans the reduced matrix in column order.
func extract(m *boundary.Matrix) *pairs.Pairs {
	out := pairs.New()
	for j := 0; j < m.NumCols(); j++ {
		if low, err := m.MaxIndex(j); err == nil {
			out.Append(low, column.Index(j))
		}
	}

	return out
}
