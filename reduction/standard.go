// SPDX-License-Identifier: MIT

package reduction

import "github.com/katalvlaran/phat/column"

// reduceStandard is the textbook reduction: columns left to right, each one
// reduced by the columns already owning its pivot.
//
// Complexity: O(n^3) worst case, typically near-linear on real complexes.
func reduceStandard(r *run) error {
	return r.phase("standard", AllDimensions, func() (int, error) {
		w := r.m.Workspace()
		defer w.Release()
		n := w.NumCols()
		lookup := newLookup(n)
		adds := 0
		for j := 0; j < n; j++ {
			low, k := reduceColumn(w, j, lookup, 0)
			adds += k
			if low != column.NoIndex {
				lookup[low] = j
			}
			w.Finalize(j)
		}

		return adds, nil
	})
}
