// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/phat/boundary"
	"github.com/katalvlaran/phat/pairs"
)

// WriteMatrix encodes m to w in format f.
func WriteMatrix(w io.Writer, m *boundary.Matrix, f Format, opts ...Option) error {
	o := gatherOptions(opts...)
	var err error
	switch f {
	case ASCII:
		err = writeMatrixASCII(w, m)
	case Binary:
		err = writeMatrixBinary(w, m)
	case Framed:
		var buf bytes.Buffer
		if err = writeMatrixBinary(&buf, m); err == nil {
			err = writeFrame(w, frameMatrix, o.compression, buf.Bytes())
		}
	default:
		err = ErrUnknownFormat
	}
	if err != nil {
		return fmt.Errorf("WriteMatrix(%s): %w", f, err)
	}

	return nil
}

// ReadMatrix decodes a matrix in format f from r. Entries must already be in
// ascending order; unsorted columns fail with boundary.ErrUnsortedColumn.
func ReadMatrix(r io.Reader, f Format, opts ...Option) (*boundary.Matrix, error) {
	o := gatherOptions(opts...)
	var (
		m   *boundary.Matrix
		err error
	)
	switch f {
	case ASCII:
		m, err = readMatrixASCII(r, o)
	case Binary:
		m, err = readMatrixBinary(r, o)
	case Framed:
		var raw []byte
		if raw, err = readFrame(r, frameMatrix); err == nil {
			m, err = readMatrixBinary(bytes.NewReader(raw), o)
		}
	default:
		err = ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix(%s): %w", f, err)
	}

	return m, nil
}

// WritePairs encodes p to w in format f.
func WritePairs(w io.Writer, p *pairs.Pairs, f Format, opts ...Option) error {
	o := gatherOptions(opts...)
	var err error
	switch f {
	case ASCII:
		err = writePairsASCII(w, p)
	case Binary:
		err = writePairsBinary(w, p)
	case Framed:
		var buf bytes.Buffer
		if err = writePairsBinary(&buf, p); err == nil {
			err = writeFrame(w, framePairs, o.compression, buf.Bytes())
		}
	default:
		err = ErrUnknownFormat
	}
	if err != nil {
		return fmt.Errorf("WritePairs(%s): %w", f, err)
	}

	return nil
}

// ReadPairs decodes pairs in format f from r.
func ReadPairs(r io.Reader, f Format) (*pairs.Pairs, error) {
	var (
		p   *pairs.Pairs
		err error
	)
	switch f {
	case ASCII:
		p, err = readPairsASCII(r)
	case Binary:
		p, err = readPairsBinary(r)
	case Framed:
		var raw []byte
		if raw, err = readFrame(r, framePairs); err == nil {
			p, err = readPairsBinary(bytes.NewReader(raw))
		}
	default:
		err = ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("ReadPairs(%s): %w", f, err)
	}

	return p, nil
}

// SaveMatrixFile writes m to path, truncating any existing file.
func SaveMatrixFile(path string, m *boundary.Matrix, f Format, opts ...Option) error {
	return saveFile(path, func(w io.Writer) error { return WriteMatrix(w, m, f, opts...) })
}

// LoadMatrixFile reads a matrix from path.
func LoadMatrixFile(path string, f Format, opts ...Option) (*boundary.Matrix, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return ReadMatrix(fh, f, opts...)
}

// SavePairsFile writes p to path, truncating any existing file.
func SavePairsFile(path string, p *pairs.Pairs, f Format, opts ...Option) error {
	return saveFile(path, func(w io.Writer) error { return WritePairs(w, p, f, opts...) })
}

// LoadPairsFile reads pairs from path.
func LoadPairsFile(path string, f Format) (*pairs.Pairs, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return ReadPairs(fh, f)
}

func saveFile(path string, write func(io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(fh); err != nil {
		_ = fh.Close()

		return err
	}

	return fh.Close()
}
