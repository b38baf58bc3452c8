// SPDX-License-Identifier: MIT

package column

// listNode is one entry of a List column.
type listNode struct {
	row  Index
	next *listNode
}

// List stores a column as a linked list in descending order, so the pivot is
// the head. Add merges in place: the receiver's nodes are relinked, nodes of
// cancelled entries are recycled, and only entries new to the receiver cost
// an allocation.
type List struct {
	head *listNode
	n    int
	free *listNode // recycled nodes
}

// NewList returns an empty List column.
func NewList() *List { return &List{} }

func (c *List) node(row Index) *listNode {
	if nd := c.free; nd != nil {
		c.free = nd.next
		nd.row, nd.next = row, nil

		return nd
	}

	return &listNode{row: row}
}

func (c *List) release(nd *listNode) {
	nd.next = c.free
	c.free = nd
}

func (c *List) Set(entries []Index) {
	c.recycle()
	var tail *listNode
	for i := len(entries) - 1; i >= 0; i-- {
		nd := c.node(entries[i])
		if tail == nil {
			c.head = nd
		} else {
			tail.next = nd
		}
		tail = nd
	}
	c.n = len(entries)
}

func (c *List) AppendTo(dst []Index) []Index {
	start := len(dst)
	for nd := c.head; nd != nil; nd = nd.next {
		dst = append(dst, nd.row)
	}
	reverse(dst[start:])

	return dst
}

func (c *List) IsEmpty() bool { return c.head == nil }

func (c *List) Len() int { return c.n }

func (c *List) Max() Index {
	if c.head == nil {
		return NoIndex
	}

	return c.head.row
}

// Add merges the descending sequence of src into c.
func (c *List) Add(src Column, scratch []Index) []Index {
	if l, ok := src.(*List); ok {
		c.mergeDescending(func(yield func(Index)) {
			for nd := l.head; nd != nil; nd = nd.next {
				yield(nd.row)
			}
		})

		return scratch
	}
	scratch = src.AppendTo(scratch[:0])
	c.mergeDescending(func(yield func(Index)) {
		for i := len(scratch) - 1; i >= 0; i-- {
			yield(scratch[i])
		}
	})

	return scratch
}

// mergeDescending walks c and a descending source in lockstep.
func (c *List) mergeDescending(each func(yield func(Index))) {
	link := &c.head // slot to attach the next kept node to
	each(func(row Index) {
		for *link != nil && (*link).row > row {
			link = &(*link).next
		}
		if cur := *link; cur != nil && cur.row == row {
			*link = cur.next
			c.release(cur)
			c.n--

			return
		}
		nd := c.node(row)
		nd.next = *link
		*link = nd
		link = &nd.next
		c.n++
	})
}

func (c *List) RemoveMax() {
	if nd := c.head; nd != nil {
		c.head = nd.next
		c.release(nd)
		c.n--
	}
}

// Clear drops every node, including recycled ones.
func (c *List) Clear() {
	c.head, c.free, c.n = nil, nil, 0
}

// recycle moves every node into the free list.
func (c *List) recycle() {
	for c.head != nil {
		nd := c.head
		c.head = nd.next
		c.release(nd)
	}
	c.n = 0
}

// Finalize drops the free list.
func (c *List) Finalize() { c.free = nil }
