// SPDX-License-Identifier: MIT

package boundary

import (
	"github.com/katalvlaran/phat/column"
)

// Dimension is the dimension tag of a column (0 for vertices, 1 for edges, ...).
type Dimension uint8

// Matrix is an ordered GF(2) boundary matrix: column j lists the row indices
// of the codimension-1 faces of simplex j, and every such index is < j.
//
// A Matrix is not safe for concurrent use through its public methods.
// Reduction workers operate on disjoint columns through Workspace handles.
type Matrix struct {
	rep  Representation
	cols []column.Column
	dims []Dimension
}

// New returns an empty matrix with the selected representation.
func New(opts ...Option) *Matrix {
	o := gatherOptions(opts...)

	return &Matrix{rep: o.rep}
}

// FromColumns builds a matrix from explicit columns and dimensions.
// Returns ErrDimensionMismatch if the lengths differ and ErrUnsortedColumn if
// any column is not strictly ascending.
func FromColumns(cols [][]column.Index, dims []Dimension, opts ...Option) (*Matrix, error) {
	m := New(opts...)
	if err := m.Load(cols, dims); err != nil {
		return nil, err
	}

	return m, nil
}

// Representation returns the storage strategy.
func (m *Matrix) Representation() Representation { return m.rep }

// NumCols returns the number of columns.
func (m *Matrix) NumCols() int { return len(m.cols) }

// SetNumCols resizes the matrix. New columns are empty with dimension 0;
// truncated columns are dropped.
func (m *Matrix) SetNumCols(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(m.cols) {
		for j := n; j < len(m.cols); j++ {
			m.cols[j] = nil
		}
		m.cols = m.cols[:n]
		m.dims = m.dims[:n]

		return
	}
	for j := len(m.cols); j < n; j++ {
		m.cols = append(m.cols, m.rep.newColumn())
		m.dims = append(m.dims, 0)
	}
}

func (m *Matrix) checkIndex(tag string, j int) error {
	if j < 0 || j >= len(m.cols) {
		return indexError(tag, j, len(m.cols))
	}

	return nil
}

// Dim returns the dimension tag of column j.
func (m *Matrix) Dim(j int) (Dimension, error) {
	if err := m.checkIndex("Dim", j); err != nil {
		return 0, err
	}

	return m.dims[j], nil
}

// SetDim sets the dimension tag of column j.
func (m *Matrix) SetDim(j int, d Dimension) error {
	if err := m.checkIndex("SetDim", j); err != nil {
		return err
	}
	m.dims[j] = d

	return nil
}

// Dims returns a copy of all dimension tags.
func (m *Matrix) Dims() []Dimension {
	out := make([]Dimension, len(m.dims))
	copy(out, m.dims)

	return out
}

// SetDims replaces every dimension tag. len(dims) must equal NumCols().
func (m *Matrix) SetDims(dims []Dimension) error {
	if len(dims) != len(m.cols) {
		return boundaryErrorf("SetDims", ErrDimensionMismatch)
	}
	copy(m.dims, dims)

	return nil
}

// MaxDim returns the largest dimension tag, 0 for an empty matrix.
func (m *Matrix) MaxDim() Dimension {
	var d Dimension
	for _, x := range m.dims {
		if x > d {
			d = x
		}
	}

	return d
}

// Col returns a fresh copy of column j in ascending order.
func (m *Matrix) Col(j int) ([]column.Index, error) {
	return m.AppendCol(j, nil)
}

// AppendCol appends column j (ascending) to dst.
func (m *Matrix) AppendCol(j int, dst []column.Index) ([]column.Index, error) {
	if err := m.checkIndex("AppendCol", j); err != nil {
		return dst, err
	}

	return m.cols[j].AppendTo(dst), nil
}

// SetCol replaces column j. entries must be strictly ascending and
// non-negative; otherwise ErrUnsortedColumn is returned and nothing changes.
func (m *Matrix) SetCol(j int, entries []column.Index) error {
	if err := m.checkIndex("SetCol", j); err != nil {
		return err
	}
	if err := ValidateColumn(entries); err != nil {
		return boundaryErrorf("SetCol", err)
	}
	m.cols[j].Set(entries)

	return nil
}

// IsEmpty reports whether column j has no entries.
func (m *Matrix) IsEmpty(j int) (bool, error) {
	if err := m.checkIndex("IsEmpty", j); err != nil {
		return false, err
	}

	return m.cols[j].IsEmpty(), nil
}

// MaxIndex returns the pivot (largest row index) of column j, or
// ErrEmptyColumn when the column has no entries.
func (m *Matrix) MaxIndex(j int) (column.Index, error) {
	if err := m.checkIndex("MaxIndex", j); err != nil {
		return column.NoIndex, err
	}
	low := m.cols[j].Max()
	if low == column.NoIndex {
		return column.NoIndex, boundaryErrorf("MaxIndex", ErrEmptyColumn)
	}

	return low, nil
}

// NumEntries returns the total number of nonzero entries.
func (m *Matrix) NumEntries() int {
	total := 0
	for _, c := range m.cols {
		total += c.Len()
	}

	return total
}

// Load replaces the whole matrix content. On error the matrix is unchanged.
func (m *Matrix) Load(cols [][]column.Index, dims []Dimension) error {
	if len(cols) != len(dims) {
		return boundaryErrorf("Load", ErrDimensionMismatch)
	}
	for j, c := range cols {
		if err := ValidateColumn(c); err != nil {
			return boundaryErrorf("Load", indexedError(j, err))
		}
	}
	m.cols = m.cols[:0]
	m.dims = m.dims[:0]
	m.SetNumCols(len(cols))
	for j, c := range cols {
		m.cols[j].Set(c)
	}
	copy(m.dims, dims)

	return nil
}

// Save returns copies of all columns and dimensions.
func (m *Matrix) Save() ([][]column.Index, []Dimension) {
	cols := make([][]column.Index, len(m.cols))
	for j, c := range m.cols {
		cols[j] = c.AppendTo(make([]column.Index, 0, c.Len()))
	}

	return cols, m.Dims()
}

// Equal reports whether m and other have the same dimensions and columns,
// independent of their representations.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == other {
		return true
	}
	if other == nil || len(m.cols) != len(other.cols) {
		return false
	}
	var a, b []column.Index
	for j := range m.cols {
		if m.dims[j] != other.dims[j] {
			return false
		}
		a = m.cols[j].AppendTo(a[:0])
		b = other.cols[j].AppendTo(b[:0])
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}

	return true
}

// Convert returns a copy of m stored with representation r.
func (m *Matrix) Convert(r Representation) *Matrix {
	out := New(WithRepresentation(r))
	out.SetNumCols(len(m.cols))
	var buf []column.Index
	for j, c := range m.cols {
		buf = c.AppendTo(buf[:0])
		out.cols[j].Set(buf)
	}
	copy(out.dims, m.dims)

	return out
}

// Clone returns a deep copy of m with the same representation.
func (m *Matrix) Clone() *Matrix { return m.Convert(m.rep) }
