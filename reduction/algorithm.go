// SPDX-License-Identifier: MIT

package reduction

import (
	"fmt"
	"strings"
)

// Algorithm selects a reduction strategy. The zero value is Twist, the
// fastest sequential choice for most inputs.
type Algorithm uint8

const (
	// Twist reduces dimension by dimension from the top, clearing paired columns.
	Twist Algorithm = iota
	// Chunk reduces contiguous column chunks in parallel, then compresses and
	// finishes the remaining global columns.
	Chunk
	// Standard is the textbook left-to-right column reduction.
	Standard
	// Row sweeps rows from right to left, eliminating each pivot row at once.
	Row
	// SpectralSequence reduces column stripes in parallel, one row block per pass.
	SpectralSequence
)

var algorithmNames = [...]struct{ long, short string }{
	Twist:            {"twist_reduction", "tr"},
	Chunk:            {"chunk_reduction", "cr"},
	Standard:         {"standard_reduction", "sr"},
	Row:              {"row_reduction", "rr"},
	SpectralSequence: {"spectral_sequence_reduction", "ssr"},
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range out {
		out[i] = Algorithm(i)
	}

	return out
}

// String returns the long name, e.g. "twist_reduction".
func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a].long
	}

	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// ShortName returns the abbreviation, e.g. "tr".
func (a Algorithm) ShortName() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a].short
	}

	return a.String()
}

// ParseAlgorithm accepts long names, short names and the bare prefix
// ("twist", "spectral_sequence"), case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, n := range algorithmNames {
		if key == n.long || key == n.short || key+"_reduction" == n.long {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("ParseAlgorithm %q: %w", s, ErrUnknownAlgorithm)
}

// dimensional reports whether a relies on dimension tags.
func (a Algorithm) dimensional() bool {
	return a == Twist || a == Chunk || a == SpectralSequence
}
