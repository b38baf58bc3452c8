// SPDX-License-Identifier: MIT
// Package codec: sentinel error set.
// Structural problems of the input are ErrMalformed (with the line or byte
// context wrapped around it); integrity failures of a frame are ErrChecksum.
// Errors of the underlying io.Reader/io.Writer are returned wrapped, not
// replaced.

package codec

import "errors"

var (
	// ErrMalformed indicates input that does not follow the selected format.
	ErrMalformed = errors.New("codec: malformed input")

	// ErrChecksum indicates a frame whose payload hash does not match.
	ErrChecksum = errors.New("codec: checksum mismatch")

	// ErrUnknownCompression indicates an unrecognized compression name or id.
	ErrUnknownCompression = errors.New("codec: unknown compression")

	// ErrUnknownFormat indicates an unrecognized format name.
	ErrUnknownFormat = errors.New("codec: unknown format")
)
