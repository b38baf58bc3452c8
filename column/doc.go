// SPDX-License-Identifier: MIT

// Package column implements sparse GF(2) column representations used by
// boundary matrices during persistent homology computations.
//
// What:
//
//   - Column: a set of row indices with a fast "lowest one" (maximal row)
//     query and in-place symmetric difference (GF(2) addition).
//     Variants:
//   - Vector: sorted slice, linear merge on Add (baseline).
//   - Heap:   max-heap with lazy cancellation of duplicate entries.
//   - Set:    B-tree of indices (github.com/google/btree).
//   - List:   sorted linked list, merge reuses the receiver's nodes.
//   - Pivot: an expanded, mutable column bound by a reduction worker to the
//     column it is currently reducing. Variants:
//   - SparsePivot:  B-tree set.
//   - HeapPivot:    max-heap with lazy cancellation.
//   - FullPivot:    dense bitset with a touched-entry history.
//   - BitTreePivot: 64-ary bit tree, O(log64 n) max and sparse iteration.
//
// Why:
//
//   - The reduction algorithms are dominated by two operations: "what is the
//     pivot of this column" and "add that column into this one". Different
//     data structures trade construction cost against repeated-add cost; the
//     variants expose the same contract so algorithms stay generic.
//
// Contract (all variants):
//
//   - Entries are ascending and deduplicated on input (Set) and output (AppendTo).
//   - Max returns NoIndex for an empty column.
//   - Add is correct for any operand sizes and any concrete source type.
//   - Columns are not safe for concurrent mutation; concurrent read-only use
//     (AppendTo, Add as a source) is safe.
//
// Complexity (n = receiver size, m = source size):
//
//   - Vector.Add: O(n+m)          Heap.Add: O(m log(n+m)) amortized
//   - Set.Add:    O(m log n)      List.Add: O(n+m)
//   - Pivot Toggle: O(log n) for SparsePivot/HeapPivot, O(1) amortized for
//     FullPivot, O(log64 n) for BitTreePivot.
package column
