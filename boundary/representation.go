// SPDX-License-Identifier: MIT

package boundary

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/phat/column"
)

// Representation selects the column storage strategy of a Matrix.
// The zero value is BitTreePivotColumn, the fastest general-purpose choice.
type Representation uint8

const (
	// BitTreePivotColumn: vector columns, bit-tree pivot workspace.
	BitTreePivotColumn Representation = iota
	// SparsePivotColumn: vector columns, B-tree pivot workspace.
	SparsePivotColumn
	// FullPivotColumn: vector columns, dense bitset pivot workspace.
	FullPivotColumn
	// HeapPivotColumn: vector columns, max-heap pivot workspace.
	HeapPivotColumn
	// VectorVector: sorted-slice columns, merged on every add.
	VectorVector
	// VectorHeap: max-heap columns with lazy cancellation.
	VectorHeap
	// VectorSet: B-tree set columns.
	VectorSet
	// VectorList: linked-list columns.
	VectorList
)

var representationNames = [...]struct{ long, short string }{
	BitTreePivotColumn: {"bit_tree_pivot_column", "btpc"},
	SparsePivotColumn:  {"sparse_pivot_column", "spc"},
	FullPivotColumn:    {"full_pivot_column", "fpc"},
	HeapPivotColumn:    {"heap_pivot_column", "hpc"},
	VectorVector:       {"vector_vector", "vv"},
	VectorHeap:         {"vector_heap", "vh"},
	VectorSet:          {"vector_set", "vs"},
	VectorList:         {"vector_list", "vl"},
}

// Representations returns every supported representation in declaration order.
func Representations() []Representation {
	out := make([]Representation, len(representationNames))
	for i := range out {
		out[i] = Representation(i)
	}

	return out
}

// String returns the long name, e.g. "bit_tree_pivot_column".
func (r Representation) String() string {
	if int(r) < len(representationNames) {
		return representationNames[r].long
	}

	return fmt.Sprintf("Representation(%d)", uint8(r))
}

// ShortName returns the abbreviation, e.g. "btpc".
func (r Representation) ShortName() string {
	if int(r) < len(representationNames) {
		return representationNames[r].short
	}

	return r.String()
}

// ParseRepresentation accepts long or short names, case-insensitively.
// Hyphens are treated as underscores.
func ParseRepresentation(s string) (Representation, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, n := range representationNames {
		if key == n.long || key == n.short {
			return Representation(i), nil
		}
	}

	return 0, fmt.Errorf("ParseRepresentation %q: %w", s, ErrUnknownRepresentation)
}

// isPivot reports whether the representation reduces through a Pivot.
func (r Representation) isPivot() bool { return r <= HeapPivotColumn }

// newColumn returns an empty compact column for r.
func (r Representation) newColumn() column.Column {
	switch r {
	case VectorHeap:
		return column.NewHeap()
	case VectorSet:
		return column.NewSet()
	case VectorList:
		return column.NewList()
	default:
		return column.NewVector()
	}
}

// newPivot returns the pivot workspace for r, or nil for plain representations.
func (r Representation) newPivot() column.Pivot {
	switch r {
	case BitTreePivotColumn:
		return column.NewBitTreePivot()
	case SparsePivotColumn:
		return column.NewSparsePivot()
	case FullPivotColumn:
		return column.NewFullPivot()
	case HeapPivotColumn:
		return column.NewHeapPivot()
	default:
		return nil
	}
}
