// SPDX-License-Identifier: MIT

package reduction

import "github.com/katalvlaran/phat/column"

// reduceTwist reduces one dimension at a time from the top. Once column j
// of dimension d is found to own pivot i, column i (dimension d-1) is known
// to reduce to zero and is cleared before its own pass runs.
//
// Dimension 0 columns are empty in a valid complex and are never visited.
func reduceTwist(r *run) error {
	w := r.m.Workspace()
	defer w.Release()
	n := w.NumCols()
	lookup := newLookup(n)
	for d := int(r.m.MaxDim()); d >= 1; d-- {
		err := r.phase("twist", d, func() (int, error) {
			adds := 0
			for j := 0; j < n; j++ {
				if int(w.Dim(j)) != d {
					continue
				}
				low, k := reduceColumn(w, j, lookup, 0)
				adds += k
				if low != column.NoIndex {
					lookup[low] = j
					w.Clear(int(low))
				}
				w.Finalize(j)
			}

			return adds, nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
