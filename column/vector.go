// SPDX-License-Identifier: MIT

package column

// Vector stores a column as a sorted slice. Add is a linear merge.
type Vector struct {
	entries []Index
}

// NewVector returns an empty Vector column.
func NewVector() *Vector { return &Vector{} }

// Set copies entries into the column.
func (c *Vector) Set(entries []Index) {
	c.entries = append(c.entries[:0], entries...)
}

// Entries exposes the backing slice for read-only use. The slice is
// invalidated by the next mutation of c.
func (c *Vector) Entries() []Index { return c.entries }

func (c *Vector) AppendTo(dst []Index) []Index { return append(dst, c.entries...) }

func (c *Vector) IsEmpty() bool { return len(c.entries) == 0 }

func (c *Vector) Len() int { return len(c.entries) }

func (c *Vector) Max() Index {
	if len(c.entries) == 0 {
		return NoIndex
	}

	return c.entries[len(c.entries)-1]
}

// Add merges src into c. The merged result is written into scratch, which
// then becomes c's storage; c's previous storage is handed back as the next
// scratch buffer. No allocation happens once both buffers are large enough.
func (c *Vector) Add(src Column, scratch []Index) []Index {
	var other []Index
	if v, ok := src.(*Vector); ok {
		other = v.entries
	} else {
		other = src.AppendTo(nil)
	}
	merged := SymmetricDifference(scratch[:0], c.entries, other)
	old := c.entries
	c.entries = merged

	return old[:0]
}

func (c *Vector) RemoveMax() {
	if len(c.entries) > 0 {
		c.entries = c.entries[:len(c.entries)-1]
	}
}

// Clear drops the entries and the backing array.
func (c *Vector) Clear() { c.entries = nil }

func (c *Vector) Finalize() {}

// SymmetricDifference appends the GF(2) sum of the ascending slices a and b
// to dst and returns the extended slice. Indices present in both cancel.
//
// Complexity: O(len(a)+len(b)).
func SymmetricDifference(dst, a, b []Index) []Index {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			dst = append(dst, a[i])
			i++
		case a[i] > b[j]:
			dst = append(dst, b[j])
			j++
		default:
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)

	return append(dst, b[j:]...)
}
