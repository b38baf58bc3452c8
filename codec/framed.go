// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Frame layout, little-endian:
//
//	magic    [4]byte "PHF1"
//	kind     uint8   frameMatrix | framePairs
//	codec    uint8   Compression
//	rawLen   uint64  uncompressed payload size
//	size     uint64  stored payload size
//	payload  [size]byte
//	checksum uint64  xxhash64 of the uncompressed payload
const (
	frameMagic      = "PHF1"
	frameHeaderSize = 4 + 1 + 1 + 8 + 8

	// maxFramePayload caps sizes read from a header.
	maxFramePayload = 1 << 36
)

type frameKind uint8

const (
	frameMatrix frameKind = 1
	framePairs  frameKind = 2
)

func writeFrame(w io.Writer, kind frameKind, c Compression, raw []byte) error {
	stored, err := compress(c, raw)
	if err != nil {
		return err
	}
	if len(stored) >= len(raw) {
		c, stored = None, raw
	}

	var hdr [frameHeaderSize]byte
	copy(hdr[:4], frameMagic)
	hdr[4] = byte(kind)
	hdr[5] = byte(c)
	binary.LittleEndian.PutUint64(hdr[6:14], uint64(len(raw)))
	binary.LittleEndian.PutUint64(hdr[14:22], uint64(len(stored)))
	var sum [8]byte
	binary.LittleEndian.PutUint64(sum[:], xxhash.Sum64(raw))

	for _, part := range [][]byte{hdr[:], stored, sum[:]} {
		if _, err := w.Write(part); err != nil {
			return err
		}
	}

	return nil
}

func readFrame(r io.Reader, kind frameKind) ([]byte, error) {
	var hdr [frameHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, truncated("frame header", err)
	}
	if string(hdr[:4]) != frameMagic {
		return nil, fmt.Errorf("bad magic %q: %w", hdr[:4], ErrMalformed)
	}
	if got := frameKind(hdr[4]); got != kind {
		return nil, fmt.Errorf("frame kind %d, want %d: %w", got, kind, ErrMalformed)
	}
	c := Compression(hdr[5])
	if int(c) >= len(compressionNames) {
		return nil, fmt.Errorf("frame compression %d: %w", hdr[5], ErrUnknownCompression)
	}
	rawLen := binary.LittleEndian.Uint64(hdr[6:14])
	size := binary.LittleEndian.Uint64(hdr[14:22])
	if rawLen > maxFramePayload || size > maxFramePayload {
		return nil, fmt.Errorf("frame sizes %d/%d: %w", rawLen, size, ErrMalformed)
	}

	var payload bytes.Buffer
	payload.Grow(int(min(size, maxPrealloc)))
	if n, err := io.CopyN(&payload, r, int64(size)); err != nil {
		return nil, truncated(fmt.Sprintf("frame payload (%d of %d bytes)", n, size), err)
	}
	stored := payload.Bytes()
	var sum [8]byte
	if _, err := io.ReadFull(r, sum[:]); err != nil {
		return nil, truncated("frame checksum", err)
	}

	raw, err := decompress(c, stored, int(rawLen))
	if err != nil {
		return nil, err
	}
	if xxhash.Sum64(raw) != binary.LittleEndian.Uint64(sum[:]) {
		return nil, ErrChecksum
	}

	return raw, nil
}

func truncated(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("truncated %s: %w", what, ErrMalformed)
	}

	return err
}
