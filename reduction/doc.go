// SPDX-License-Identifier: MIT

// Package reduction transforms an ordered GF(2) boundary matrix into reduced
// form in place: afterwards every nonempty column has a pivot (largest row
// index) that no other column shares. Pivot (i, j) means the class born at
// simplex i dies at simplex j.
//
// Algorithms:
//
//   - Standard: left to right, repeatedly adding the column that owns the
//     current pivot.
//   - Twist: Standard per dimension from the top, clearing columns known to
//     reduce to zero.
//   - Row: right to left over rows, eliminating a pivot row from every column
//     at once.
//   - Chunk: parallel local reduction of column chunks, compression of the
//     remaining global columns, then a short sequential finish.
//   - SpectralSequence: parallel column stripes, one row block per pass.
//
// All algorithms produce the same pivots; they differ in speed and in the
// content of non-pivot entries.
//
// Concurrency:
//
//   - Chunk and SpectralSequence run bounded errgroup worker pools
//     (WithWorkers). Each goroutine owns a boundary.Workspace that is released
//     before the pass barrier. Reduce itself must not be called concurrently
//     on the same matrix.
//
// Observability:
//
//   - WithLogger receives debug records per phase; WithObserver receives phase
//     timings and counters (see package metrics for a Prometheus observer).
package reduction
