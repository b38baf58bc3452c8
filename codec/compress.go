// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// zstdMaxWindow bounds the history a frame may ask the decoder to allocate.
const zstdMaxWindow = 32 << 20

var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("codec: zstd encoder: %v", err))
		}

		return enc
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
			zstd.WithDecoderMaxWindow(zstdMaxWindow),
		)
		if err != nil {
			panic(fmt.Sprintf("codec: zstd decoder: %v", err))
		}

		return dec
	},
}

var lz4CompressorPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// compress encodes data with c. A result not shorter than data means the
// payload should be stored uncompressed.
func compress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case None:
		return data, nil
	case Zstd:
		enc := zstdEncoderPool.Get().(*zstd.Encoder)
		defer zstdEncoderPool.Put(enc)

		return enc.EncodeAll(data, nil), nil
	case S2:
		var buf bytes.Buffer
		w := s2.NewWriter(&buf, s2.WriterConcurrency(1))
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("s2: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("s2: %w", err)
		}

		return buf.Bytes(), nil
	case LZ4:
		lc := lz4CompressorPool.Get().(*lz4.Compressor)
		defer lz4CompressorPool.Put(lc)
		dst := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lc.CompressBlock(data, dst)
		if err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		if n == 0 {
			// Incompressible: the frame writer stores it raw.
			return data, nil
		}

		return dst[:n], nil
	default:
		return nil, fmt.Errorf("compress %d: %w", c, ErrUnknownCompression)
	}
}

// decompress inverts compress; rawLen is the exact uncompressed size. Output
// buffers start at most maxPrealloc bytes and grow only with decoded data.
func decompress(c Compression, data []byte, rawLen int) ([]byte, error) {
	var (
		out []byte
		err error
	)
	initial := min(rawLen, maxPrealloc)
	switch c {
	case None:
		out = data
	case Zstd:
		dec := zstdDecoderPool.Get().(*zstd.Decoder)
		defer zstdDecoderPool.Put(dec)
		if err = dec.Reset(bytes.NewReader(data)); err == nil {
			out, err = readBounded(dec, rawLen, initial)
		}
	case S2:
		out, err = readBounded(s2.NewReader(bytes.NewReader(data)), rawLen, initial)
	case LZ4:
		out, err = uncompressLZ4(data, rawLen, initial)
	default:
		return nil, fmt.Errorf("decompress %d: %w", c, ErrUnknownCompression)
	}
	if err != nil {
		return nil, fmt.Errorf("%s payload: %w (%w)", c, ErrMalformed, err)
	}
	if len(out) != rawLen {
		return nil, fmt.Errorf("%s payload: %d bytes, header says %d: %w", c, len(out), rawLen, ErrMalformed)
	}

	return out, nil
}

// readBounded drains r, stopping one byte past rawLen so an oversized
// stream is detected without reading it whole.
func readBounded(r io.Reader, rawLen, initial int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(initial)
	if _, err := io.Copy(&buf, io.LimitReader(r, int64(rawLen)+1)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// uncompressLZ4 starts from a small buffer and doubles it on
// ErrInvalidSourceShortBuffer, never beyond rawLen.
func uncompressLZ4(data []byte, rawLen, initial int) ([]byte, error) {
	size := min(max(initial, 4*len(data)), rawLen)
	for {
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(data, out)
		if err == nil {
			return out[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
		if size >= rawLen {
			return nil, fmt.Errorf("lz4: payload larger than declared %d bytes", rawLen)
		}
		size = min(2*size, rawLen)
	}
}
