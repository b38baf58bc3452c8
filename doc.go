// Package phat computes persistence pairs of filtered cell complexes:
// boundary matrices over GF(2) in, (birth, death) index pairs out.
//
// 🚀 What is phat?
//
//	A parallel, representation-agnostic reduction toolkit that brings together:
//		• Column representations: sorted vectors, heaps, B-tree sets, lists
//		• Pivot columns: sparse, heap, dense bitset and a 64-ary bit tree
//		• Reductions: standard, twist, row, chunk (parallel), spectral sequence (parallel)
//		• Dualization: reduce the anti-transpose, map pairs back
//		• File formats: ASCII, little-endian binary, compressed checksummed frames
//		• Observability: slog debug logging, Prometheus phase metrics
//
// ✨ Why choose phat?
//
//   - Same pairs everywhere: every algorithm on every representation agrees
//   - Tunable: swap representation and algorithm with one option each
//   - Parallel where it pays: chunk and spectral sequence use worker pools
//   - Scriptable: the phat command reads, reduces, converts and compares
//
// Under the hood, everything is organized under these subpackages:
//
//	column/       Column and Pivot implementations over row indices
//	boundary/     Matrix, Representation, validation, Dualize, Workspace
//	reduction/    Reduce with the five algorithms, options and Observer
//	pairs/        persistence pair lists
//	persistence/  Compute, ComputeCopy, ComputeDualized
//	codec/        matrix and pairs file formats
//	metrics/      Prometheus Observer
//	cmd/phat      command-line driver
//
// Quick ASCII example, the filtered triangle:
//
//	0 ──2── 1
//	 ╲      │
//	  5  6  4      vertices 0,1,3; edges 2,4,5; face 6
//	   ╲    │
//	     ╲  │
//	        3
//
// gives the pairs (1 2) (3 4) (5 6); vertex 0 stays essential.
//
//	go install github.com/katalvlaran/phat/cmd/phat@latest
package phat
