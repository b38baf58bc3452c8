// SPDX-License-Identifier: MIT

// Package pairs holds the result of a reduction: an ordered list of
// (birth, death) simplex index pairs.
//
// Index semantics follow Python-style negative indexing: At(-1) is the last
// pair, At(-Len()) the first; anything outside [-Len(), Len()) returns
// ErrOutOfRange.
package pairs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/phat/column"
)

// ErrOutOfRange indicates a pair index outside [-Len(), Len()).
var ErrOutOfRange = errors.New("pairs: index out of range")

// Pair is one persistence pair: the class born at simplex Birth dies at
// simplex Death (Birth < Death).
type Pair struct {
	Birth column.Index
	Death column.Index
}

// Pairs is an ordered, growable sequence of Pair.
type Pairs struct {
	items []Pair
}

// New returns an empty container.
func New() *Pairs { return &Pairs{} }

// FromSlice returns a container holding a copy of ps.
func FromSlice(ps []Pair) *Pairs {
	p := New()
	p.Load(ps)

	return p
}

// Len returns the number of pairs.
func (p *Pairs) Len() int { return len(p.items) }

// Append adds a pair at the end.
func (p *Pairs) Append(birth, death column.Index) {
	p.items = append(p.items, Pair{Birth: birth, Death: death})
}

// SetNumPairs resizes the container; new pairs are zero.
func (p *Pairs) SetNumPairs(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(p.items) {
		p.items = p.items[:n]
		return
	}
	p.items = append(p.items, make([]Pair, n-len(p.items))...)
}

func (p *Pairs) resolve(tag string, i int) (int, error) {
	n := len(p.items)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%s(%d) with %d pairs: %w", tag, i, n, ErrOutOfRange)
	}

	return i, nil
}

// At returns pair i; negative i counts from the end.
func (p *Pairs) At(i int) (Pair, error) {
	k, err := p.resolve("At", i)
	if err != nil {
		return Pair{}, err
	}

	return p.items[k], nil
}

// Set overwrites pair i; negative i counts from the end.
func (p *Pairs) Set(i int, birth, death column.Index) error {
	k, err := p.resolve("Set", i)
	if err != nil {
		return err
	}
	p.items[k] = Pair{Birth: birth, Death: death}

	return nil
}

// Clear removes all pairs.
func (p *Pairs) Clear() { p.items = p.items[:0] }

// Sort orders pairs by birth, then death.
func (p *Pairs) Sort() {
	sort.Slice(p.items, func(i, j int) bool {
		a, b := p.items[i], p.items[j]
		if a.Birth != b.Birth {
			return a.Birth < b.Birth
		}

		return a.Death < b.Death
	})
}

// Equal reports whether both containers hold the same pairs in the same order.
func (p *Pairs) Equal(other *Pairs) bool {
	if other == nil || len(p.items) != len(other.items) {
		return false
	}
	for i := range p.items {
		if p.items[i] != other.items[i] {
			return false
		}
	}

	return true
}

// All returns a copy of the pairs.
func (p *Pairs) All() []Pair {
	out := make([]Pair, len(p.items))
	copy(out, p.items)

	return out
}

// Load replaces the content with a copy of ps.
func (p *Pairs) Load(ps []Pair) {
	p.items = append(p.items[:0], ps...)
}

// Clone returns an independent copy.
func (p *Pairs) Clone() *Pairs { return FromSlice(p.items) }

// String renders the pairs as "[(b d) (b d) ...]".
func (p *Pairs) String() string {
	return fmt.Sprint(p.items)
}

// String renders one pair as "(b d)".
func (pr Pair) String() string { return fmt.Sprintf("(%d %d)", pr.Birth, pr.Death) }
