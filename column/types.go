// SPDX-License-Identifier: MIT

// Package column: shared types and the two representation contracts.
package column

// Index identifies a simplex (a row or a column position) in filtration order.
type Index int64

// NoIndex is the pivot of an empty column.
const NoIndex Index = -1

// Column is a sparse GF(2) column: an ascending set of row indices.
//
// Implementations differ only in cost profile; see the package docs.
type Column interface {
	// Set replaces the content with entries (ascending, deduplicated).
	Set(entries []Index)

	// AppendTo appends the entries in ascending order to dst and returns it.
	// Must not mutate the receiver.
	AppendTo(dst []Index) []Index

	// IsEmpty reports whether the column has no entries.
	IsEmpty() bool

	// Len returns the number of entries.
	Len() int

	// Max returns the maximal row index (the pivot) or NoIndex if empty.
	Max() Index

	// Add replaces the receiver with the symmetric difference of the
	// receiver and src. scratch is a reusable buffer owned by the caller;
	// the returned slice must be kept by the caller for the next call.
	Add(src Column, scratch []Index) []Index

	// RemoveMax drops the pivot entry. No-op on an empty column.
	RemoveMax()

	// Clear removes all entries and releases their storage.
	Clear()

	// Finalize performs representation housekeeping once a column is done
	// being reduced (e.g. pruning cancelled heap entries).
	Finalize()
}

// Pivot is an expanded working column. A reduction worker loads the column
// it is reducing into a Pivot, applies repeated additions to it and flushes
// the result back into compact storage.
type Pivot interface {
	// Reset clears the pivot and prepares it for row indices in [0, numRows).
	Reset(numRows int)

	// Toggle flips the presence of row i.
	Toggle(i Index)

	// ToggleAll flips every entry of entries (GF(2) addition of a column).
	ToggleAll(entries []Index)

	// Max returns the maximal present row or NoIndex.
	Max() Index

	// RemoveMax drops the maximal present row.
	RemoveMax()

	// IsEmpty reports whether no row is present.
	IsEmpty() bool

	// AppendTo appends present rows in ascending order without mutating the
	// logical content.
	AppendTo(dst []Index) []Index

	// Clear removes every present row; capacity set by Reset is retained.
	Clear()
}
