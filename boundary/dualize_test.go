// SPDX-License-Identifier: MIT
package boundary_test

import (
	"testing"

	"github.com/katalvlaran/phat/boundary"
	"github.com/katalvlaran/phat/column"
	"github.com/katalvlaran/phat/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDualize_Triangle checks the anti-transpose entry by entry.
func TestDualize_Triangle(t *testing.T) {
	t.Parallel()
	m := fixture.Triangle().Matrix()
	dual, err := boundary.Dualize(m)
	require.NoError(t, err)

	// entry r of column j becomes entry 6-j of column 6-r
	want := [][]column.Index{
		{},     // 0 <- row 6: none
		{0},    // 1 <- row 5 in column 6
		{0},    // 2 <- row 4 in column 6
		{1, 2}, // 3 <- row 3 in columns 5, 4
		{0},    // 4 <- row 2 in column 6
		{2, 4}, // 5 <- row 1 in columns 4, 2
		{1, 4}, // 6 <- row 0 in columns 5, 2
	}
	for j, w := range want {
		got, err := dual.Col(j)
		require.NoError(t, err)
		if len(w) == 0 {
			assert.Empty(t, got, "column %d", j)
		} else {
			assert.Equal(t, w, got, "column %d", j)
		}
	}
	assert.Equal(t, []boundary.Dimension{0, 1, 1, 2, 1, 2, 2}, dual.Dims())
	require.NoError(t, dual.Validate())
	require.NoError(t, dual.ValidateDimensions())
	assert.True(t, fixture.Triangle().Matrix().Equal(m), "input must be unchanged")
}

// TestDualize_Involution checks Dualize(Dualize(m)) == m for every
// representation.
func TestDualize_Involution(t *testing.T) {
	t.Parallel()
	data := fixture.RandomComplex(11, 8, 3, 0.75)
	for _, rep := range boundary.Representations() {
		m := data.Matrix(boundary.WithRepresentation(rep))
		d1, err := boundary.Dualize(m)
		require.NoError(t, err)
		assert.Equal(t, rep, d1.Representation())
		d2, err := boundary.Dualize(d1)
		require.NoError(t, err)
		assert.True(t, d2.Equal(m), rep.String())
	}
}

// TestDualize_RejectsUnordered checks the precondition.
func TestDualize_RejectsUnordered(t *testing.T) {
	t.Parallel()
	m, err := boundary.FromColumns([][]column.Index{{0}}, []boundary.Dimension{0})
	require.NoError(t, err)
	_, err = boundary.Dualize(m)
	require.ErrorIs(t, err, boundary.ErrNotOrdered)
}
