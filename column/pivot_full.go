// SPDX-License-Identifier: MIT

package column

import "github.com/bits-and-blooms/bitset"

// FullPivot is a dense pivot: one bit per row plus a history heap of every
// row touched since the last Clear. Toggle is O(1) amortized; Max walks the
// history, discarding rows whose bit has been switched off. Clear only resets
// touched rows, so reuse across columns costs O(touched), not O(rows).
type FullPivot struct {
	bits      *bitset.BitSet // current content
	inHistory *bitset.BitSet // row is present in history
	history   maxHeap
}

// NewFullPivot returns a FullPivot; Reset must be called before use.
func NewFullPivot() *FullPivot {
	return &FullPivot{bits: bitset.New(0), inHistory: bitset.New(0)}
}

// Reset allocates room for numRows rows and clears the content.
func (p *FullPivot) Reset(numRows int) {
	p.bits = bitset.New(uint(numRows))
	p.inHistory = bitset.New(uint(numRows))
	p.history = p.history[:0]
}

func (p *FullPivot) Toggle(i Index) {
	u := uint(i)
	if !p.inHistory.Test(u) {
		p.history.push(i)
		p.inHistory.Set(u)
	}
	p.bits.Flip(u)
}

func (p *FullPivot) ToggleAll(entries []Index) {
	for _, e := range entries {
		p.Toggle(e)
	}
}

// Max drops stale history entries until a set bit is on top.
func (p *FullPivot) Max() Index {
	for len(p.history) > 0 {
		top := p.history.top()
		if p.bits.Test(uint(top)) {
			return top
		}
		p.history.pop()
		p.inHistory.Clear(uint(top))
	}

	return NoIndex
}

func (p *FullPivot) RemoveMax() {
	if m := p.Max(); m != NoIndex {
		p.bits.Clear(uint(m))
	}
}

func (p *FullPivot) IsEmpty() bool { return p.Max() == NoIndex }

// AppendTo filters a sorted copy of the history through the bitset.
func (p *FullPivot) AppendTo(dst []Index) []Index {
	cp := make(maxHeap, len(p.history))
	copy(cp, p.history)
	start := len(dst)
	for len(cp) > 0 {
		r := cp.pop()
		if p.bits.Test(uint(r)) {
			dst = append(dst, r)
		}
	}
	reverse(dst[start:])

	return dst
}

func (p *FullPivot) Clear() {
	for _, r := range p.history {
		p.bits.Clear(uint(r))
		p.inHistory.Clear(uint(r))
	}
	p.history = p.history[:0]
}
