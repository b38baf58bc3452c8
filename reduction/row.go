// SPDX-License-Identifier: MIT

package reduction

import "github.com/katalvlaran/phat/column"

// reduceRow sweeps indices from right to left. At index i, column i is first
// registered under its pivot; then every column whose pivot is row i gets
// the leftmost of them added, leaving a single owner of row i. Row i being
// a pivot means column i is positive, so it is cleared.
func reduceRow(r *run) error {
	return r.phase("row", AllDimensions, func() (int, error) {
		w := r.m.Workspace()
		defer w.Release()
		n := w.NumCols()
		byLow := make([][]int, n) // byLow[row] = columns whose pivot is row
		adds := 0
		for i := n - 1; i >= 0; i-- {
			if low := w.Lowest(i); low != column.NoIndex {
				byLow[low] = append(byLow[low], i)
			}
			cols := byLow[i]
			byLow[i] = nil
			if len(cols) == 0 {
				continue
			}
			source := -1
			for _, c := range cols {
				if !w.IsEmpty(c) && (source < 0 || c < source) {
					source = c
				}
			}
			if source < 0 {
				continue // only cleared columns were registered here
			}
			w.Clear(i)
			w.Finalize(i)
			for _, target := range cols {
				if target == source || w.IsEmpty(target) {
					continue
				}
				w.Add(source, target)
				adds++
				if low := w.Lowest(target); low != column.NoIndex {
					byLow[low] = append(byLow[low], target)
				}
			}
		}

		return adds, nil
	})
}
