// SPDX-License-Identifier: MIT

package column

import "math/bits"

// BitTreePivot is a 64-ary bit tree. Level 0 holds one bit per row; bit b of
// word w at level k+1 is set iff word w*64+b at level k is non-zero. The top
// level is a single word.
//
// Complexity (n rows):
//   - Toggle, Max, RemoveMax: O(log64 n).
//   - AppendTo, Clear: O(k log64 n) for k present rows.
//   - Reset: O(n/64).
type BitTreePivot struct {
	levels [][]uint64 // levels[0] = rows, last = single root word
}

// NewBitTreePivot returns a BitTreePivot; Reset must be called before use.
func NewBitTreePivot() *BitTreePivot {
	p := &BitTreePivot{}
	p.Reset(0)

	return p
}

// Reset sizes the tree for numRows rows and clears it.
func (p *BitTreePivot) Reset(numRows int) {
	words := (numRows + 63) / 64
	if words == 0 {
		words = 1
	}
	p.levels = p.levels[:0]
	for {
		p.levels = append(p.levels, make([]uint64, words))
		if words == 1 {
			break
		}
		words = (words + 63) / 64
	}
}

// Toggle flips row i and propagates emptiness changes upward.
func (p *BitTreePivot) Toggle(i Index) {
	idx := uint64(i)
	for _, level := range p.levels {
		w := idx >> 6
		before := level[w]
		level[w] ^= 1 << (idx & 63)
		if (before == 0) == (level[w] == 0) {
			return // parent summary unchanged
		}
		idx = w
	}
}

func (p *BitTreePivot) ToggleAll(entries []Index) {
	for _, e := range entries {
		p.Toggle(e)
	}
}

// Max descends from the root along the highest set bit.
func (p *BitTreePivot) Max() Index {
	top := len(p.levels) - 1
	if p.levels[top][0] == 0 {
		return NoIndex
	}
	var idx uint64
	for k := top; k >= 0; k-- {
		word := p.levels[k][idx]
		idx = idx<<6 | uint64(63-bits.LeadingZeros64(word))
	}

	return Index(idx)
}

func (p *BitTreePivot) RemoveMax() {
	if m := p.Max(); m != NoIndex {
		p.Toggle(m)
	}
}

func (p *BitTreePivot) IsEmpty() bool { return p.levels[len(p.levels)-1][0] == 0 }

// AppendTo walks set bits in ascending order, pruning empty subtrees.
func (p *BitTreePivot) AppendTo(dst []Index) []Index {
	return p.collect(dst, len(p.levels)-1, 0)
}

func (p *BitTreePivot) collect(dst []Index, level int, w uint64) []Index {
	word := p.levels[level][w]
	for word != 0 {
		b := uint64(bits.TrailingZeros64(word))
		word &= word - 1
		child := w<<6 | b
		if level == 0 {
			dst = append(dst, Index(child))
		} else {
			dst = p.collect(dst, level-1, child)
		}
	}

	return dst
}

// Clear zeroes only the words on paths to present rows.
func (p *BitTreePivot) Clear() { p.clearWord(len(p.levels)-1, 0) }

func (p *BitTreePivot) clearWord(level int, w uint64) {
	word := p.levels[level][w]
	p.levels[level][w] = 0
	if level == 0 {
		return
	}
	for word != 0 {
		b := uint64(bits.TrailingZeros64(word))
		word &= word - 1
		p.clearWord(level-1, w<<6|b)
	}
}
