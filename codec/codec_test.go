// SPDX-License-Identifier: MIT
package codec_test

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/phat/boundary"
	"github.com/katalvlaran/phat/codec"
	"github.com/katalvlaran/phat/column"
	"github.com/katalvlaran/phat/internal/fixture"
	"github.com/katalvlaran/phat/pairs"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allFormats = []codec.Format{codec.ASCII, codec.Binary, codec.Framed}

var allCompressions = []codec.Compression{codec.None, codec.Zstd, codec.S2, codec.LZ4}

// TestGolden_Triangle pins the ASCII layout of the triangle and its pairs.
func TestGolden_Triangle(t *testing.T) {
	g := goldie.New(t)

	var buf bytes.Buffer
	require.NoError(t, codec.WriteMatrix(&buf, fixture.Triangle().Matrix(), codec.ASCII))
	g.Assert(t, "triangle_matrix", buf.Bytes())

	buf.Reset()
	p := pairs.FromSlice([]pairs.Pair{{Birth: 1, Death: 2}, {Birth: 3, Death: 4}, {Birth: 5, Death: 6}})
	require.NoError(t, codec.WritePairs(&buf, p, codec.ASCII))
	g.Assert(t, "triangle_pairs", buf.Bytes())
}

// TestMatrix_RoundTrip checks every format and compression reproduces the
// matrix, in the requested representation.
func TestMatrix_RoundTrip(t *testing.T) {
	t.Parallel()
	want := fixture.RandomComplex(5, 12, 3, 0.6).Matrix()
	for _, f := range allFormats {
		for _, c := range allCompressions {
			var buf bytes.Buffer
			require.NoError(t, codec.WriteMatrix(&buf, want, f, codec.WithCompression(c)))
			got, err := codec.ReadMatrix(&buf, f, codec.WithRepresentation(boundary.VectorHeap))
			require.NoError(t, err, "%s/%s", f, c)
			assert.Equal(t, boundary.VectorHeap, got.Representation())
			assert.True(t, want.Equal(got), "%s/%s", f, c)
			assert.Equal(t, want.Fingerprint(), got.Fingerprint())
		}
	}
}

// TestPairs_RoundTrip checks pairs survive every format.
func TestPairs_RoundTrip(t *testing.T) {
	t.Parallel()
	want := pairs.New()
	for i := 0; i < 500; i++ {
		want.Append(column.Index(i), column.Index(3*i+1))
	}
	for _, f := range allFormats {
		for _, c := range allCompressions {
			var buf bytes.Buffer
			require.NoError(t, codec.WritePairs(&buf, want, f, codec.WithCompression(c)))
			got, err := codec.ReadPairs(&buf, f)
			require.NoError(t, err, "%s/%s", f, c)
			assert.True(t, want.Equal(got), "%s/%s", f, c)
		}
	}
}

// TestReadMatrixASCII_CommentsAndBlanks checks lenient ASCII parsing.
func TestReadMatrixASCII_CommentsAndBlanks(t *testing.T) {
	t.Parallel()
	in := "# triangle\n\n0\n0\n  1 0 1  \n# comment\n0\n1 1 3\n1 0 3\n2 2 4 5\n"
	got, err := codec.ReadMatrix(strings.NewReader(in), codec.ASCII)
	require.NoError(t, err)
	assert.True(t, fixture.Triangle().Matrix().Equal(got))
}

// TestRead_Malformed checks structural errors map to ErrMalformed.
func TestRead_Malformed(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"dimension": "x 1 2\n",
		"index":     "1 0 y\n",
		"big dim":   "300\n",
	}
	for name, in := range cases {
		_, err := codec.ReadMatrix(strings.NewReader(in), codec.ASCII)
		assert.ErrorIs(t, err, codec.ErrMalformed, name)
	}

	_, err := codec.ReadMatrix(strings.NewReader("0\n1 1 0\n"), codec.ASCII)
	assert.ErrorIs(t, err, boundary.ErrUnsortedColumn)

	for name, in := range map[string]string{
		"short":    "3\n1 2\n",
		"long":     "1\n1 2\n3 4\n",
		"fields":   "1\n1 2 3\n",
		"count":    "-1\n",
		"non-int":  "1\na b\n",
		"two-word": "1 2\n",
	} {
		_, err := codec.ReadPairs(strings.NewReader(in), codec.ASCII)
		assert.ErrorIs(t, err, codec.ErrMalformed, name)
	}

	var buf bytes.Buffer
	require.NoError(t, codec.WriteMatrix(&buf, fixture.Triangle().Matrix(), codec.Binary))
	_, err = codec.ReadMatrix(bytes.NewReader(buf.Bytes()[:buf.Len()-3]), codec.Binary)
	assert.ErrorIs(t, err, codec.ErrMalformed)

	_, err = codec.ReadMatrix(strings.NewReader("XXXX"), codec.Framed)
	assert.ErrorIs(t, err, codec.ErrMalformed)
}

// frameHeader builds a matrix frame header with the given declared sizes.
func frameHeader(c codec.Compression, rawLen, size uint64) []byte {
	hdr := []byte{'P', 'H', 'F', '1', 1, byte(c)}
	hdr = binary.LittleEndian.AppendUint64(hdr, rawLen)

	return binary.LittleEndian.AppendUint64(hdr, size)
}

// TestFramed_OversizedHeader checks declared sizes are not trusted: a header
// promising gigabytes with no payload behind it fails cleanly.
func TestFramed_OversizedHeader(t *testing.T) {
	t.Parallel()
	for _, c := range allCompressions {
		_, err := codec.ReadMatrix(bytes.NewReader(frameHeader(c, 1<<33, 1<<33)), codec.Framed)
		assert.ErrorIs(t, err, codec.ErrMalformed, c.String())
	}

	m := fixture.RandomComplex(4, 12, 3, 0.6).Matrix()
	for _, c := range allCompressions {
		var buf bytes.Buffer
		require.NoError(t, codec.WriteMatrix(&buf, m, codec.Framed, codec.WithCompression(c)))
		patched := bytes.Clone(buf.Bytes())
		binary.LittleEndian.PutUint64(patched[6:14], 1<<33)
		_, err := codec.ReadMatrix(bytes.NewReader(patched), codec.Framed)
		assert.ErrorIs(t, err, codec.ErrMalformed, c.String())
	}

	_, err := codec.ReadMatrix(bytes.NewReader(frameHeader(codec.None, 1<<40, 1<<40)), codec.Framed)
	assert.ErrorIs(t, err, codec.ErrMalformed)
}

// TestFramed_Integrity checks corruption and kind confusion are detected.
func TestFramed_Integrity(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	m := fixture.Triangle().Matrix()
	require.NoError(t, codec.WriteMatrix(&buf, m, codec.Framed, codec.WithCompression(codec.None)))
	raw := buf.Bytes()

	corrupt := bytes.Clone(raw)
	corrupt[30] ^= 0x01
	_, err := codec.ReadMatrix(bytes.NewReader(corrupt), codec.Framed)
	assert.ErrorIs(t, err, codec.ErrChecksum)

	_, err = codec.ReadPairs(bytes.NewReader(raw), codec.Framed)
	assert.ErrorIs(t, err, codec.ErrMalformed)

	badCodec := bytes.Clone(raw)
	badCodec[5] = 9
	_, err = codec.ReadMatrix(bytes.NewReader(badCodec), codec.Framed)
	assert.ErrorIs(t, err, codec.ErrUnknownCompression)

	_, err = codec.ReadMatrix(bytes.NewReader(raw[:len(raw)-4]), codec.Framed)
	assert.ErrorIs(t, err, codec.ErrMalformed)
}

// TestFiles checks the path helpers.
func TestFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	m := fixture.RandomComplex(2, 8, 2, 0.7).Matrix()
	path := filepath.Join(dir, "m.phf")
	require.NoError(t, codec.SaveMatrixFile(path, m, codec.Framed, codec.WithCompression(codec.S2)))
	got, err := codec.LoadMatrixFile(path, codec.Framed)
	require.NoError(t, err)
	assert.True(t, m.Equal(got))

	p := pairs.FromSlice([]pairs.Pair{{Birth: 0, Death: 4}})
	ppath := filepath.Join(dir, "p.txt")
	require.NoError(t, codec.SavePairsFile(ppath, p, codec.ASCII))
	gotP, err := codec.LoadPairsFile(ppath, codec.ASCII)
	require.NoError(t, err)
	assert.True(t, p.Equal(gotP))

	_, err = codec.LoadMatrixFile(filepath.Join(dir, "missing"), codec.ASCII)
	assert.Error(t, err)
}

// TestParse checks name parsing of formats and compressions.
func TestParse(t *testing.T) {
	t.Parallel()
	for _, f := range allFormats {
		got, err := codec.ParseFormat(strings.ToUpper(f.String()))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	for _, c := range allCompressions {
		got, err := codec.ParseCompression(" " + c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := codec.ParseFormat("xml")
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)
	_, err = codec.ParseCompression("gzip")
	assert.ErrorIs(t, err, codec.ErrUnknownCompression)
	assert.Panics(t, func() { codec.WithCompression(codec.Compression(42)) })
}
