// SPDX-License-Identifier: MIT

package column

import "github.com/google/btree"

// btreeDegree is the B-tree fan-out used by Set and SparsePivot.
// Small nodes keep single-entry toggles cheap; 16 is a good middle ground
// for columns ranging from a handful to thousands of entries.
const btreeDegree = 16

// Set stores a column as an ordered B-tree. Add toggles every source entry.
type Set struct {
	t *btree.BTreeG[Index]
}

// NewSet returns an empty Set column.
func NewSet() *Set { return &Set{t: btree.NewOrderedG[Index](btreeDegree)} }

func (c *Set) Set(entries []Index) {
	c.t.Clear(false)
	for _, e := range entries {
		c.t.ReplaceOrInsert(e)
	}
}

func (c *Set) AppendTo(dst []Index) []Index {
	c.t.Ascend(func(i Index) bool {
		dst = append(dst, i)
		return true
	})

	return dst
}

func (c *Set) IsEmpty() bool { return c.t.Len() == 0 }

func (c *Set) Len() int { return c.t.Len() }

func (c *Set) Max() Index {
	if m, ok := c.t.Max(); ok {
		return m
	}

	return NoIndex
}

func (c *Set) Add(src Column, scratch []Index) []Index {
	if s, ok := src.(*Set); ok {
		s.t.Ascend(func(i Index) bool {
			c.toggle(i)
			return true
		})

		return scratch
	}
	scratch = src.AppendTo(scratch[:0])
	for _, e := range scratch {
		c.toggle(e)
	}

	return scratch
}

func (c *Set) toggle(i Index) {
	if _, found := c.t.Delete(i); !found {
		c.t.ReplaceOrInsert(i)
	}
}

func (c *Set) RemoveMax() { c.t.DeleteMax() }

func (c *Set) Clear() { c.t.Clear(false) }

func (c *Set) Finalize() {}
