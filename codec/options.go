// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/phat/boundary"
)

// Format selects the on-disk encoding.
type Format uint8

const (
	// ASCII: one text line per column ("dim idx idx ...") or per pair.
	ASCII Format = iota
	// Binary: little-endian int64 stream.
	Binary
	// Framed: Binary inside a compressed, checksummed frame.
	Framed
)

var formatNames = [...]string{ASCII: "ascii", Binary: "binary", Framed: "framed"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}

	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat accepts "ascii", "binary" and "framed", case-insensitively.
func ParseFormat(s string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range formatNames {
		if key == n {
			return Format(i), nil
		}
	}

	return 0, fmt.Errorf("ParseFormat %q: %w", s, ErrUnknownFormat)
}

// Compression selects the frame compression of the Framed format.
type Compression uint8

const (
	// None stores the payload as is.
	None Compression = iota
	// Zstd favours ratio.
	Zstd
	// S2 favours speed.
	S2
	// LZ4 favours decompression speed.
	LZ4
)

var compressionNames = [...]string{None: "none", Zstd: "zstd", S2: "s2", LZ4: "lz4"}

func (c Compression) String() string {
	if int(c) < len(compressionNames) {
		return compressionNames[c]
	}

	return fmt.Sprintf("Compression(%d)", uint8(c))
}

// ParseCompression accepts "none", "zstd", "s2" and "lz4", case-insensitively.
func ParseCompression(s string) (Compression, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range compressionNames {
		if key == n {
			return Compression(i), nil
		}
	}

	return 0, fmt.Errorf("ParseCompression %q: %w", s, ErrUnknownCompression)
}

// DefaultCompression is the frame compression used without WithCompression.
const DefaultCompression = Zstd

const panicCompressionInvalid = "codec: WithCompression: unknown compression"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds resolved encoder/decoder settings.
type Options struct {
	compression Compression
	matrixOpts  []boundary.Option
}

// WithCompression selects the frame compression (Framed format only).
// Panics on an undeclared Compression value.
func WithCompression(c Compression) Option {
	if int(c) >= len(compressionNames) {
		panic(panicCompressionInvalid)
	}

	return func(o *Options) { o.compression = c }
}

// WithRepresentation selects the representation of loaded matrices.
func WithRepresentation(r boundary.Representation) Option {
	opt := boundary.WithRepresentation(r)

	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, opt) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{compression: DefaultCompression}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
