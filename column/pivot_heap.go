// SPDX-License-Identifier: MIT

package column

// HeapPivot is a max-heap pivot with lazy GF(2) cancellation, pruned like
// the Heap column.
type HeapPivot struct {
	data    maxHeap
	inserts int
	tmp     []Index
}

// NewHeapPivot returns an empty HeapPivot.
func NewHeapPivot() *HeapPivot { return &HeapPivot{} }

func (p *HeapPivot) Reset(int) { p.Clear() }

func (p *HeapPivot) Toggle(i Index) {
	p.data.push(i)
	p.inserts++
}

func (p *HeapPivot) ToggleAll(entries []Index) {
	for _, e := range entries {
		p.data.push(e)
	}
	p.inserts += len(entries)
	if 2*p.inserts > len(p.data) {
		p.prune()
	}
}

func (p *HeapPivot) Max() Index { return p.data.peekMax() }

func (p *HeapPivot) RemoveMax() { p.data.popMax() }

func (p *HeapPivot) IsEmpty() bool { return p.data.peekMax() == NoIndex }

// AppendTo prunes first; pruning does not change the logical content.
func (p *HeapPivot) AppendTo(dst []Index) []Index {
	p.prune()
	for i := len(p.data) - 1; i >= 0; i-- {
		dst = append(dst, p.data[i])
	}

	return dst
}

func (p *HeapPivot) Clear() {
	p.data = p.data[:0]
	p.inserts = 0
}

// prune leaves the surviving entries in descending order.
func (p *HeapPivot) prune() {
	p.tmp = p.data.drainDescending(p.tmp[:0])
	p.data = append(p.data[:0], p.tmp...)
	p.inserts = 0
}
