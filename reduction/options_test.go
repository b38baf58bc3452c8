// SPDX-License-Identifier: MIT
package reduction_test

import (
	"testing"

	"github.com/katalvlaran/phat/reduction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptions_Panics checks the option constructors reject nonsense.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	assert.PanicsWithValue(t, "reduction: WithWorkers: workers must be >= 1", func() { reduction.WithWorkers(0) })
	assert.PanicsWithValue(t, "reduction: WithChunkSize: size must be >= 0", func() { reduction.WithChunkSize(-1) })
	assert.PanicsWithValue(t, "reduction: WithLogger: logger must not be nil", func() { reduction.WithLogger(nil) })
	assert.PanicsWithValue(t, "reduction: WithObserver: observer must not be nil", func() { reduction.WithObserver(nil) })
	assert.NotPanics(t, func() { reduction.WithChunkSize(reduction.DefaultChunkSize) })
	assert.GreaterOrEqual(t, reduction.DefaultWorkers(), 1)
}

// TestParseAlgorithm checks long, short, bare and malformed names.
func TestParseAlgorithm(t *testing.T) {
	t.Parallel()
	for _, a := range reduction.Algorithms() {
		for _, name := range []string{a.String(), a.ShortName()} {
			got, err := reduction.ParseAlgorithm(name)
			require.NoError(t, err, name)
			assert.Equal(t, a, got)
		}
	}
	got, err := reduction.ParseAlgorithm("Spectral-Sequence")
	require.NoError(t, err)
	assert.Equal(t, reduction.SpectralSequence, got)

	_, err = reduction.ParseAlgorithm("gauss")
	assert.ErrorIs(t, err, reduction.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(9)", reduction.Algorithm(9).String())
	assert.Equal(t, reduction.Twist, reduction.Algorithm(0), "zero value is the default algorithm")
}
