// SPDX-License-Identifier: MIT

// Package fixture builds deterministic boundary matrices for tests,
// examples and benchmarks.
package fixture

import (
	"math/bits"
	"math/rand"
	"sort"

	"github.com/katalvlaran/phat/boundary"
	"github.com/katalvlaran/phat/column"
)

// Data is a matrix in plain form, independent of any representation.
type Data struct {
	Cols [][]column.Index
	Dims []boundary.Dimension
}

// Matrix materializes d with the given options. Fixtures are valid by
// construction, so a load error is a bug and panics.
func (d Data) Matrix(opts ...boundary.Option) *boundary.Matrix {
	m, err := boundary.FromColumns(d.Cols, d.Dims, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Triangle is the filtered triangle: vertices 0,1,3, edges 2=(0,1), 4=(1,3),
// 5=(0,3) and the face 6. Its persistence pairs are (1,2), (3,4), (5,6).
func Triangle() Data {
	return Data{
		Cols: [][]column.Index{{}, {}, {0, 1}, {}, {1, 3}, {0, 3}, {2, 4, 5}},
		Dims: []boundary.Dimension{0, 0, 1, 0, 1, 1, 2},
	}
}

// Empty returns n columns without entries, all of dimension 0.
func Empty(n int) Data {
	return Data{Cols: make([][]column.Index, n), Dims: make([]boundary.Dimension, n)}
}

// simplex is a vertex set encoded as a bitmask plus its filtration value.
type simplex struct {
	verts uint64
	value float64
}

// RandomComplex returns the boundary matrix of a random filtered simplicial
// complex on vertices vertices (at most 64) with simplices up to dimension
// maxDim. Each candidate simplex is kept with probability keep if all its
// faces were kept; filtration values are random but never smaller than those
// of the faces, and ties are broken by dimension and then vertex set.
// The result is ordered and dimension-consistent, and its boundary squares
// to zero.
func RandomComplex(seed int64, vertices, maxDim int, keep float64) Data {
	rng := rand.New(rand.NewSource(seed))
	value := map[uint64]float64{}
	var all []simplex

	level := make([]uint64, 0, vertices)
	for v := 0; v < vertices; v++ {
		s := uint64(1) << v
		value[s] = rng.Float64()
		level = append(level, s)
		all = append(all, simplex{s, value[s]})
	}
	for d := 1; d <= maxDim; d++ {
		var next []uint64
		for _, s := range level {
			// extend by vertices above the current top to visit each set once
			for v := 64 - bits.LeadingZeros64(s); v < vertices; v++ {
				c := s | uint64(1)<<v
				facesMax, ok := faceValues(c, value)
				if !ok || rng.Float64() >= keep {
					continue
				}
				val := facesMax + rng.Float64()*0.25
				value[c] = val
				next = append(next, c)
				all = append(all, simplex{c, val})
			}
		}
		level = next
	}

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.value != b.value {
			return a.value < b.value
		}
		if da, db := bits.OnesCount64(a.verts), bits.OnesCount64(b.verts); da != db {
			return da < db
		}

		return a.verts < b.verts
	})

	pos := make(map[uint64]column.Index, len(all))
	for i, s := range all {
		pos[s.verts] = column.Index(i)
	}
	out := Data{Cols: make([][]column.Index, len(all)), Dims: make([]boundary.Dimension, len(all))}
	for i, s := range all {
		out.Dims[i] = boundary.Dimension(bits.OnesCount64(s.verts) - 1)
		if out.Dims[i] == 0 {
			continue
		}
		var col []column.Index
		for rest := s.verts; rest != 0; rest &= rest - 1 {
			col = append(col, pos[s.verts&^(rest&-rest)])
		}
		sort.Slice(col, func(a, b int) bool { return col[a] < col[b] })
		out.Cols[i] = col
	}

	return out
}

// faceValues returns the largest filtration value among the codimension-1
// faces of s, and false if some face is missing.
func faceValues(s uint64, value map[uint64]float64) (float64, bool) {
	best := 0.0
	for rest := s; rest != 0; rest &= rest - 1 {
		v, ok := value[s&^(rest&-rest)]
		if !ok {
			return 0, false
		}
		if v > best {
			best = v
		}
	}

	return best, true
}
