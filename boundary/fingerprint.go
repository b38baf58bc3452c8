// SPDX-License-Identifier: MIT

package boundary

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/phat/column"
)

// Fingerprint returns an xxhash64 digest of the canonical matrix content
// (column count, then per column its dimension, size and entries, as
// little-endian int64). Equal matrices have equal fingerprints regardless of
// representation.
func (m *Matrix) Fingerprint() uint64 {
	d := xxhash.New()
	var word [8]byte
	put := func(v int64) {
		binary.LittleEndian.PutUint64(word[:], uint64(v))
		_, _ = d.Write(word[:])
	}
	put(int64(len(m.cols)))
	var buf []column.Index
	for j, c := range m.cols {
		buf = c.AppendTo(buf[:0])
		put(int64(m.dims[j]))
		put(int64(len(buf)))
		for _, e := range buf {
			put(int64(e))
		}
	}

	return d.Sum64()
}
