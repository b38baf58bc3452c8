// SPDX-License-Identifier: MIT

package column

import "github.com/google/btree"

// SparsePivot is a B-tree backed pivot. Its cost does not depend on the number
// of rows, which makes it a fit for very sparse matrices with huge index ranges.
type SparsePivot struct {
	t *btree.BTreeG[Index]
}

// NewSparsePivot returns an empty SparsePivot.
func NewSparsePivot() *SparsePivot {
	return &SparsePivot{t: btree.NewOrderedG[Index](btreeDegree)}
}

// Reset ignores numRows: the B-tree grows on demand.
func (p *SparsePivot) Reset(int) { p.t.Clear(true) }

func (p *SparsePivot) Toggle(i Index) {
	if _, found := p.t.Delete(i); !found {
		p.t.ReplaceOrInsert(i)
	}
}

func (p *SparsePivot) ToggleAll(entries []Index) {
	for _, e := range entries {
		p.Toggle(e)
	}
}

func (p *SparsePivot) Max() Index {
	if m, ok := p.t.Max(); ok {
		return m
	}

	return NoIndex
}

func (p *SparsePivot) RemoveMax() { p.t.DeleteMax() }

func (p *SparsePivot) IsEmpty() bool { return p.t.Len() == 0 }

func (p *SparsePivot) AppendTo(dst []Index) []Index {
	p.t.Ascend(func(i Index) bool {
		dst = append(dst, i)
		return true
	})

	return dst
}

// Clear keeps freed nodes on the tree's free list for the next column.
func (p *SparsePivot) Clear() { p.t.Clear(true) }
