// SPDX-License-Identifier: MIT

package reduction

import (
	"github.com/katalvlaran/phat/boundary"
	"github.com/katalvlaran/phat/column"
)

// reduceSpectral implements the spectral-sequence reduction.
//
// Implementation:
//   - The index range is cut into one stripe per worker (block size
//     ceil(n/stripes)); row blocks use the same cut.
//   - Per dimension from the top, pass p lets stripe s resolve pivots lying
//     in row block s-p. Stripes run in parallel; block s-p belongs to exactly
//     one stripe in pass p, so lookup slots are never shared.
//   - Columns whose pivot drops below the current block wait for the next
//     pass. After pass s every column of stripe s is resolved or empty.
//   - A resolved pair (i, j) clears column i, which has dimension d-1 and is
//     never read during the dimension-d passes.
func reduceSpectral(r *run) error {
	m := r.m
	n := m.NumCols()
	if n == 0 {
		return nil
	}
	stripes := r.opts.workers
	block := (n + stripes - 1) / stripes
	lookup := newLookup(n)
	dims := m.Dims()
	pool := newWorkspaces(m)
	pending := make([][]int, stripes)

	for d := int(m.MaxDim()); d >= 1; d-- {
		dim := boundary.Dimension(d)
		for s := range pending {
			pending[s] = pending[s][:0]
			for j := s * block; j < min((s+1)*block, n); j++ {
				if dims[j] == dim {
					if empty, _ := m.IsEmpty(j); !empty {
						pending[s] = append(pending[s], j)
					}
				}
			}
		}

		for p := 0; p < stripes; p++ {
			err := r.phase("spectral-pass", d, func() (int, error) {
				return fanOut(r.opts.workers, stripes-p, func(i int) (int, error) {
					s := p + i
					if len(pending[s]) == 0 {
						return 0, nil
					}
					rowBegin := column.Index((s - p) * block)
					rowEnd := column.Index(min((s-p+1)*block, n))
					w := pool.get()
					defer pool.put(w)
					var k int
					pending[s], k = reduceStripe(w, pending[s], lookup, rowBegin, rowEnd)

					return k, nil
				})
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// reduceStripe reduces cols against pivots in [rowBegin, rowEnd) and returns
// the columns left for later passes (compacted in place) and the number of
// additions.
func reduceStripe(w *boundary.Workspace, cols []int, lookup []int, rowBegin, rowEnd column.Index) ([]int, int) {
	adds := 0
	next := cols[:0]
	for _, j := range cols {
		low := w.Lowest(j)
		for low >= rowBegin && low < rowEnd && lookup[low] != noPartner {
			w.Add(lookup[low], j)
			adds++
			low = w.Lowest(j)
		}
		switch {
		case low == column.NoIndex:
		case low >= rowBegin && low < rowEnd:
			lookup[low] = j
			w.Clear(int(low))
		default:
			next = append(next, j)
		}
		w.Finalize(j)
	}

	return next, adds
}
