// SPDX-License-Identifier: MIT
// Package column_test checks every column and pivot variant against a
// map-based reference model.
package column_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/phat/column"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// columnKinds lists every Column constructor under test.
var columnKinds = []struct {
	name string
	make func() column.Column
}{
	{"vector", func() column.Column { return column.NewVector() }},
	{"heap", func() column.Column { return column.NewHeap() }},
	{"set", func() column.Column { return column.NewSet() }},
	{"list", func() column.Column { return column.NewList() }},
}

// reference is a naive GF(2) column.
type reference map[column.Index]bool

func (r reference) toggle(xs ...column.Index) {
	for _, x := range xs {
		if r[x] {
			delete(r, x)
		} else {
			r[x] = true
		}
	}
}

func (r reference) sorted() []column.Index {
	out := make([]column.Index, 0, len(r))
	for k := range r {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func (r reference) max() column.Index {
	s := r.sorted()
	if len(s) == 0 {
		return column.NoIndex
	}

	return s[len(s)-1]
}

// randomEntries draws a sorted, deduplicated subset of [0, rows).
func randomEntries(rng *rand.Rand, rows, maxLen int) []column.Index {
	ref := reference{}
	for i := rng.Intn(maxLen + 1); i > 0; i-- {
		ref[column.Index(rng.Intn(rows))] = true
	}

	return ref.sorted()
}

// TestColumn_EmptyContract checks the zero-content behavior of each variant.
func TestColumn_EmptyContract(t *testing.T) {
	t.Parallel()
	for _, k := range columnKinds {
		k := k
		t.Run(k.name, func(t *testing.T) {
			c := k.make()
			assert.True(t, c.IsEmpty())
			assert.Equal(t, 0, c.Len())
			assert.Equal(t, column.NoIndex, c.Max())
			assert.Empty(t, c.AppendTo(nil))
			c.RemoveMax() // no-op on empty
			assert.True(t, c.IsEmpty())
		})
	}
}

// TestColumn_SetAndRead checks Set/AppendTo/Max/Len round trips.
func TestColumn_SetAndRead(t *testing.T) {
	t.Parallel()
	for _, k := range columnKinds {
		k := k
		t.Run(k.name, func(t *testing.T) {
			c := k.make()
			c.Set([]column.Index{2, 4, 5})
			require.Equal(t, []column.Index{2, 4, 5}, c.AppendTo(nil))
			assert.Equal(t, column.Index(5), c.Max())
			assert.Equal(t, 3, c.Len())

			c.RemoveMax()
			assert.Equal(t, []column.Index{2, 4}, c.AppendTo(nil))

			c.Set([]column.Index{7})
			assert.Equal(t, []column.Index{7}, c.AppendTo(nil))

			c.Clear()
			assert.True(t, c.IsEmpty())
			assert.Equal(t, column.NoIndex, c.Max())
		})
	}
}

// TestColumn_AddCancels checks that a column added to an equal column vanishes
// and that shared entries cancel.
func TestColumn_AddCancels(t *testing.T) {
	t.Parallel()
	for _, k := range columnKinds {
		k := k
		t.Run(k.name, func(t *testing.T) {
			a, b := k.make(), k.make()
			a.Set([]column.Index{0, 3})
			b.Set([]column.Index{1, 3})

			var scratch []column.Index
			scratch = a.Add(b, scratch)
			assert.Equal(t, []column.Index{0, 1}, a.AppendTo(nil))
			assert.Equal(t, []column.Index{1, 3}, b.AppendTo(nil), "source must be untouched")

			c := k.make()
			c.Set([]column.Index{0, 1})
			_ = a.Add(c, scratch)
			a.Finalize()
			assert.True(t, a.IsEmpty())
			assert.Equal(t, 0, a.Len())
		})
	}
}

// TestColumn_RandomAgainstReference applies random sets, adds and removals
// across every pair of variants and compares with the reference model.
func TestColumn_RandomAgainstReference(t *testing.T) {
	t.Parallel()
	const (
		rows  = 200
		steps = 400
	)
	for _, dst := range columnKinds {
		for _, src := range columnKinds {
			dst, src := dst, src
			t.Run(dst.name+"+"+src.name, func(t *testing.T) {
				rng := rand.New(rand.NewSource(42))
				c := dst.make()
				ref := reference{}
				var scratch []column.Index
				for step := 0; step < steps; step++ {
					switch rng.Intn(10) {
					case 0:
						e := randomEntries(rng, rows, 20)
						c.Set(e)
						ref = reference{}
						ref.toggle(e...)
					case 1:
						c.RemoveMax()
						if m := ref.max(); m != column.NoIndex {
							delete(ref, m)
						}
					case 2:
						c.Finalize()
					default:
						e := randomEntries(rng, rows, 30)
						s := src.make()
						s.Set(e)
						scratch = c.Add(s, scratch)
						ref.toggle(e...)
					}
					require.Equal(t, ref.max(), c.Max(), "step %d", step)
					require.Equal(t, len(ref) == 0, c.IsEmpty(), "step %d", step)
				}
				want := ref.sorted()
				require.Equal(t, len(want), c.Len())
				if len(want) == 0 {
					require.Empty(t, c.AppendTo(nil))
				} else {
					require.Equal(t, want, c.AppendTo(nil))
				}
			})
		}
	}
}

// TestColumn_AppendToKeepsPrefix checks AppendTo appends after existing data.
func TestColumn_AppendToKeepsPrefix(t *testing.T) {
	t.Parallel()
	for _, k := range columnKinds {
		c := k.make()
		c.Set([]column.Index{1, 2, 9})
		got := c.AppendTo([]column.Index{100})
		assert.Equal(t, []column.Index{100, 1, 2, 9}, got, k.name)
	}
}

// TestSymmetricDifference covers disjoint, overlapping and empty inputs.
func TestSymmetricDifference(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b, want []column.Index
	}{
		{nil, nil, nil},
		{[]column.Index{1, 2}, nil, []column.Index{1, 2}},
		{nil, []column.Index{3}, []column.Index{3}},
		{[]column.Index{1, 3, 5}, []column.Index{2, 3, 6}, []column.Index{1, 2, 5, 6}},
		{[]column.Index{1, 2}, []column.Index{1, 2}, nil},
	}
	for i, tc := range tests {
		got := column.SymmetricDifference(nil, tc.a, tc.b)
		assert.Equal(t, tc.want, got, fmt.Sprintf("case %d", i))
	}
}
