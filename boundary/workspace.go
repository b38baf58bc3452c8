// SPDX-License-Identifier: MIT

package boundary

import "github.com/katalvlaran/phat/column"

// Workspace is a per-worker handle through which reduction algorithms read
// and modify a Matrix. For pivot representations the column being reduced is
// expanded into the worker's private Pivot on first modification and written
// back on Finalize, when another column is modified, or on Release.
//
// A Workspace must not be shared between goroutines. Several workspaces may
// operate on one Matrix concurrently as long as they modify disjoint columns
// and only read columns nobody modifies.
//
// Indices are not range-checked; callers are reduction algorithms that run
// after Validate.
type Workspace struct {
	m       *Matrix
	pivot   column.Pivot // nil for plain representations
	bound   int          // column held in pivot, -1 if none
	scratch []column.Index
	buf     []column.Index
}

// Workspace returns a new worker handle for m.
func (m *Matrix) Workspace() *Workspace {
	w := &Workspace{m: m, bound: -1}
	if p := m.rep.newPivot(); p != nil {
		p.Reset(len(m.cols))
		w.pivot = p
	}

	return w
}

// Matrix returns the matrix this workspace operates on.
func (w *Workspace) Matrix() *Matrix { return w.m }

// NumCols returns the matrix size.
func (w *Workspace) NumCols() int { return len(w.m.cols) }

// Dim returns the dimension tag of column j.
func (w *Workspace) Dim(j int) Dimension { return w.m.dims[j] }

// Lowest returns the pivot of column j or column.NoIndex if it is empty.
func (w *Workspace) Lowest(j int) column.Index {
	if w.bound == j {
		return w.pivot.Max()
	}

	return w.m.cols[j].Max()
}

// IsEmpty reports whether column j has no entries.
func (w *Workspace) IsEmpty(j int) bool {
	if w.bound == j {
		return w.pivot.IsEmpty()
	}

	return w.m.cols[j].IsEmpty()
}

// Add adds column source into column target (GF(2)).
func (w *Workspace) Add(source, target int) {
	if w.pivot == nil {
		w.scratch = w.m.cols[target].Add(w.m.cols[source], w.scratch)
		return
	}
	if w.bound != target {
		// Flushing first keeps source current when it was the bound column.
		w.bind(target)
	}
	if v, ok := w.m.cols[source].(*column.Vector); ok {
		w.pivot.ToggleAll(v.Entries())

		return
	}
	w.buf = w.m.cols[source].AppendTo(w.buf[:0])
	w.pivot.ToggleAll(w.buf)
}

// Clear empties column j and releases its storage.
func (w *Workspace) Clear(j int) {
	if w.bound == j {
		w.pivot.Clear()
		w.bound = -1
	}
	w.m.cols[j].Clear()
}

// RemoveMax drops the pivot entry of column j.
func (w *Workspace) RemoveMax(j int) {
	if w.bound == j {
		w.pivot.RemoveMax()
		return
	}
	w.m.cols[j].RemoveMax()
}

// SetCol replaces column j with entries (ascending, deduplicated).
func (w *Workspace) SetCol(j int, entries []column.Index) {
	if w.bound == j {
		w.pivot.Clear()
		w.bound = -1
	}
	w.m.cols[j].Set(entries)
}

// AppendCol appends column j in ascending order to dst.
func (w *Workspace) AppendCol(j int, dst []column.Index) []column.Index {
	if w.bound == j {
		return w.pivot.AppendTo(dst)
	}

	return w.m.cols[j].AppendTo(dst)
}

// Finalize marks column j as done: a bound pivot is flushed, plain columns
// run their housekeeping.
func (w *Workspace) Finalize(j int) {
	if w.bound == j {
		w.flush()
		return
	}
	w.m.cols[j].Finalize()
}

// Release flushes any pending pivot. The workspace stays usable.
func (w *Workspace) Release() {
	if w.bound >= 0 {
		w.flush()
	}
}

func (w *Workspace) bind(j int) {
	if w.bound >= 0 {
		w.flush()
	}
	w.buf = w.m.cols[j].AppendTo(w.buf[:0])
	w.pivot.ToggleAll(w.buf)
	w.bound = j
}

func (w *Workspace) flush() {
	w.buf = w.pivot.AppendTo(w.buf[:0])
	w.m.cols[w.bound].Set(w.buf)
	w.pivot.Clear()
	w.bound = -1
}
