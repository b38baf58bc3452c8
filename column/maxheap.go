// SPDX-License-Identifier: MIT

// Package column: typed binary max-heap shared by Heap, HeapPivot and the
// FullPivot history.
package column

// maxHeap is a binary max-heap of row indices. Duplicate entries are allowed;
// Heap and HeapPivot interpret a pair of equal entries as cancelled (GF(2)).
type maxHeap []Index

func (h *maxHeap) push(x Index) {
	*h = append(*h, x)
	s := *h
	i := len(s) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if s[parent] >= s[i] {
			break
		}
		s[parent], s[i] = s[i], s[parent]
		i = parent
	}
}

// top returns the maximal entry. The heap must be non-empty.
func (h maxHeap) top() Index { return h[0] }

// pop removes and returns the maximal entry. The heap must be non-empty.
func (h *maxHeap) pop() Index {
	s := *h
	n := len(s) - 1
	out := s[0]
	s[0] = s[n]
	s = s[:n]
	i := 0
	for {
		l := 2*i + 1
		if l >= n {
			break
		}
		m := l
		if r := l + 1; r < n && s[r] > s[l] {
			m = r
		}
		if s[i] >= s[m] {
			break
		}
		s[i], s[m] = s[m], s[i]
		i = m
	}
	*h = s

	return out
}

// popMax pops the maximal entry that survives GF(2) cancellation.
// Pairs of equal maxima are discarded. Returns NoIndex when nothing survives.
func (h *maxHeap) popMax() Index {
	for len(*h) > 0 {
		m := h.pop()
		if len(*h) > 0 && h.top() == m {
			h.pop() // m + m = 0
			continue
		}

		return m
	}

	return NoIndex
}

// peekMax returns the surviving maximum without changing the logical content.
// Cancelled pairs found on top are dropped as a side effect.
func (h *maxHeap) peekMax() Index {
	m := h.popMax()
	if m != NoIndex {
		h.push(m)
	}

	return m
}

// drainDescending pops every surviving entry into dst in descending order.
func (h *maxHeap) drainDescending(dst []Index) []Index {
	for m := h.popMax(); m != NoIndex; m = h.popMax() {
		dst = append(dst, m)
	}

	return dst
}

// reverse flips s in place.
func reverse(s []Index) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
