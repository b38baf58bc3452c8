// SPDX-License-Identifier: MIT

package column

// Heap stores a column as a max-heap. Add pushes the source entries without
// merging; duplicates cancel lazily when they surface at the top. The heap is
// pruned once the number of inserts since the last prune exceeds half its
// size, bounding the garbage it can accumulate.
type Heap struct {
	data    maxHeap
	inserts int // entries pushed since the last prune
	tmp     []Index
}

// NewHeap returns an empty Heap column.
func NewHeap() *Heap { return &Heap{} }

// Set replaces the content. An ascending slice read backwards is already a
// valid max-heap.
func (c *Heap) Set(entries []Index) {
	c.data = c.data[:0]
	for i := len(entries) - 1; i >= 0; i-- {
		c.data = append(c.data, entries[i])
	}
	c.inserts = 0
}

// AppendTo drains a copy of the heap, so the receiver is left untouched and
// concurrent readers are safe.
func (c *Heap) AppendTo(dst []Index) []Index {
	cp := make(maxHeap, len(c.data))
	copy(cp, c.data)
	start := len(dst)
	dst = cp.drainDescending(dst)
	reverse(dst[start:])

	return dst
}

func (c *Heap) IsEmpty() bool { return c.data.peekMax() == NoIndex }

func (c *Heap) Len() int {
	c.prune()

	return len(c.data)
}

func (c *Heap) Max() Index { return c.data.peekMax() }

// Add pushes every raw entry of src. For a Heap source the raw heap array is
// used directly: uncancelled duplicates in src cancel again in c.
func (c *Heap) Add(src Column, scratch []Index) []Index {
	var in []Index
	if h, ok := src.(*Heap); ok {
		in = h.data
	} else {
		scratch = src.AppendTo(scratch[:0])
		in = scratch
	}
	for _, e := range in {
		c.data.push(e)
	}
	c.inserts += len(in)
	if 2*c.inserts > len(c.data) {
		c.prune()
	}

	return scratch
}

func (c *Heap) RemoveMax() { c.data.popMax() }

func (c *Heap) Clear() {
	c.data = nil
	c.tmp = nil
	c.inserts = 0
}

// Finalize prunes cancelled entries.
func (c *Heap) Finalize() { c.prune() }

// prune rebuilds the heap from its surviving entries.
func (c *Heap) prune() {
	c.tmp = c.data.drainDescending(c.tmp[:0])
	c.data = append(c.data[:0], c.tmp...) // descending order is a valid heap
	c.inserts = 0
}
