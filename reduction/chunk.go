// SPDX-License-Identifier: MIT

package reduction

import (
	"math"

	"github.com/katalvlaran/phat/boundary"
	"github.com/katalvlaran/phat/column"
)

// Column classification used by the chunk algorithm.
const (
	global        int8 = iota // not (yet) resolved locally
	localNegative             // owns a pivot found inside its chunk window
	localPositive             // is the pivot row of a local negative column
)

// chunkSize resolves the automatic chunk length.
func chunkSize(n int, o Options) int {
	size := o.chunkSize
	if size == DefaultChunkSize {
		if o.workers == 1 {
			size = int(math.Sqrt(float64(n)))
		} else {
			size = n / o.workers
		}
	}
	if size < 1 {
		size = 1
	}

	return size
}

// reduceChunk implements the clear-and-compress chunk reduction.
//
// Implementation:
//   - Stage 1 (local, per dimension from the top): every chunk reduces its
//     columns using pivots inside the chunk's own rows; a second pass widens
//     the row window to the preceding chunk. A column that finds an unowned
//     pivot in its window becomes local negative, its pivot column local
//     positive (and cleared). Chunks run in parallel; each pass ends with a
//     barrier.
//   - Stage 2 (compress): every remaining global column drops local negative
//     rows and eliminates local positive rows, adding the owning local column
//     only when that column can still contribute a global row ("active").
//   - Stage 3 (global): the compressed global columns are reduced
//     sequentially, twist style.
//
// Concurrency: in a local pass chunk c only touches lookup slots and column
// types of rows in its window, which is disjoint from the windows of the
// chunks running alongside it once global columns of other dimensions are
// skipped by the dimension test first. Compression only writes global
// columns and reads local ones.
func reduceChunk(r *run) error {
	m := r.m
	n := m.NumCols()
	if n == 0 {
		return nil
	}
	size := chunkSize(n, r.opts)
	var bounds []int
	for b := 0; b < n; b += size {
		bounds = append(bounds, b)
	}
	bounds = append(bounds, n)
	numChunks := len(bounds) - 1

	lookup := newLookup(n)
	kind := make([]int8, n)
	dims := m.Dims()
	pool := newWorkspaces(m)

	for d := int(m.MaxDim()); d >= 1; d-- {
		for pass := 0; pass < 2; pass++ {
			name := "chunk-local"
			if pass == 1 {
				name = "chunk-local-wide"
			}
			err := r.phase(name, d, func() (int, error) {
				return fanOut(r.opts.workers, numChunks-pass, func(i int) (int, error) {
					c := pass + i
					w := pool.get()
					defer pool.put(w)

					return reduceLocalChunk(w, dims, boundary.Dimension(d),
						kind, lookup, bounds[c-pass], bounds[c], bounds[c+1]), nil
				})
			})
			if err != nil {
				return err
			}
		}
	}

	var globals []int
	for j, k := range kind {
		if k == global && dims[j] > 0 {
			globals = append(globals, j)
		}
	}
	err := r.phase("chunk-compress", AllDimensions, func() (int, error) {
		active := activeLocalColumns(m, kind, lookup)
		batches := (len(globals) + compressBatch - 1) / compressBatch

		return fanOut(r.opts.workers, batches, func(i int) (int, error) {
			start := i * compressBatch
			batch := globals[start:min(start+compressBatch, len(globals))]
			w := pool.get()
			defer pool.put(w)
			var kept []column.Index
			total := 0
			for _, j := range batch {
				var k int
				kept, k = compressColumn(w, j, kind, lookup, active, kept)
				total += k
			}

			return total, nil
		})
	})
	if err != nil {
		return err
	}

	w := m.Workspace()
	defer w.Release()
	for d := int(m.MaxDim()); d >= 1; d-- {
		err := r.phase("chunk-global", d, func() (int, error) {
			adds := 0
			for _, j := range globals {
				if int(dims[j]) != d {
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

// compressBatch is the number of global columns compressed per task.
const compressBatch = 64

// reduceLocalChunk reduces the global columns of dimension d in
// [colBegin, colEnd) using pivots in rows >= rowBegin.
func reduceLocalChunk(w *boundary.Workspace, dims []boundary.Dimension, d boundary.Dimension,
	kind []int8, lookup []int, rowBegin, colBegin, colEnd int) int {
	adds := 0
	for j := colBegin; j < colEnd; j++ {
		// dimension first: kind of lower-dimensional columns is written by
		// the neighbouring chunk
		if dims[j] != d || kind[j] != global {
			continue
		}
		low, k := reduceColumn(w, j, lookup, column.Index(rowBegin))
		adds += k
		if low != column.NoIndex && low >= column.Index(rowBegin) {
			lookup[low] = j
			kind[j] = localNegative
			kind[low] = localPositive
			w.Clear(int(low))
		}
		w.Finalize(j)
	}

	return adds
}

// activeLocalColumns marks local negative columns whose elimination can
// still leave a global row behind. A local column's non-pivot entries lie
// below its pivot, so visiting pivots in ascending order settles every
// dependency before it is needed.
func activeLocalColumns(m *boundary.Matrix, kind []int8, lookup []int) []bool {
	active := make([]bool, len(kind))
	var buf []column.Index
	for row, k := range kind {
		if k != localPositive {
			continue
		}
		owner := lookup[row]
		buf, _ = m.AppendCol(owner, buf[:0])
		for _, e := range buf {
			if int(e) == row {
				continue
			}
			if kind[e] == global || (kind[e] == localPositive && active[lookup[e]]) {
				active[owner] = true
				break
			}
		}
	}

	return active
}

// compressColumn rewrites global column j to its global rows. kept is a
// reusable buffer; the updated buffer and the number of additions are
// returned.
func compressColumn(w *boundary.Workspace, j int, kind []int8, lookup []int, active []bool,
	kept []column.Index) ([]column.Index, int) {
	kept = kept[:0]
	adds := 0
	for low := w.Lowest(j); low != column.NoIndex; low = w.Lowest(j) {
		switch kind[low] {
		case global:
			kept = append(kept, low)
			w.RemoveMax(j)
		case localPositive:
			if owner := lookup[low]; active[owner] {
				w.Add(owner, j)
				adds++
			} else {
				w.RemoveMax(j)
			}
		default: // localNegative rows never become pivots
			w.RemoveMax(j)
		}
	}
	for a, b := 0, len(kept)-1; a < b; a, b = a+1, b-1 {
		kept[a], kept[b] = kept[b], kept[a]
	}
	w.SetCol(j, kept)

	return kept, adds
}
