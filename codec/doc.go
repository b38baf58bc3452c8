// SPDX-License-Identifier: MIT

// Package codec reads and writes boundary matrices and persistence pairs.
//
// Formats:
//
//   - ASCII: a matrix is one line per column, "dim idx idx ...", with
//     blank lines and lines starting with '#' ignored. Pairs are a count
//     line followed by "birth death" lines.
//   - Binary: the same content as little-endian int64 values. A matrix is
//     numCols, then dim, size and the entries of every column. Pairs are
//     numPairs, then birth and death of every pair.
//   - Framed: the Binary payload wrapped in a header, compressed with zstd,
//     s2 or lz4, and closed by an xxhash64 checksum of the payload.
//
// Decoded matrices are validated for sorted columns only; ordering and
// dimension checks happen when a reduction runs.
package codec
