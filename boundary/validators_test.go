// SPDX-License-Identifier: MIT
// Package boundary_test contains unit tests for the matrix validators.
package boundary_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/phat/boundary"
	"github.com/katalvlaran/phat/column"
	"github.com/katalvlaran/phat/internal/fixture"
	"github.com/stretchr/testify/require"
)

// TestValidate covers ordered, self-referencing and forward-referencing columns.
func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		cols    [][]column.Index
		wantErr error
	}{
		{"empty matrix", nil, nil},
		{"triangle", fixture.Triangle().Cols, nil},
		{"self reference", [][]column.Index{{}, {1}}, boundary.ErrNotOrdered},
		{"forward reference", [][]column.Index{{1}, {}}, boundary.ErrNotOrdered},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := boundary.FromColumns(tc.cols, make([]boundary.Dimension, len(tc.cols)))
			require.NoError(t, err)
			err = m.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateDimensions covers consistent and inconsistent dimension tags.
func TestValidateDimensions(t *testing.T) {
	t.Parallel()
	require.NoError(t, fixture.Triangle().Matrix().ValidateDimensions())
	require.NoError(t, fixture.RandomComplex(1, 8, 3, 0.8).Matrix().ValidateDimensions())
	require.NoError(t, fixture.Empty(5).Matrix().ValidateDimensions())

	tri := fixture.Triangle()
	tri.Dims = append([]boundary.Dimension(nil), tri.Dims...)
	tri.Dims[6] = 1
	err := tri.Matrix().ValidateDimensions()
	require.ErrorIs(t, err, boundary.ErrDimensionMismatch)

	past, err := boundary.FromColumns([][]column.Index{{}, {5}}, []boundary.Dimension{0, 1})
	require.NoError(t, err)
	require.NotPanics(t, func() { err = past.ValidateDimensions() })
	require.ErrorIs(t, err, boundary.ErrNotOrdered)
}

// TestValidateColumn covers the column input check.
func TestValidateColumn(t *testing.T) {
	t.Parallel()
	require.NoError(t, boundary.ValidateColumn(nil))
	require.NoError(t, boundary.ValidateColumn([]column.Index{0, 4, 9}))
	require.ErrorIs(t, boundary.ValidateColumn([]column.Index{4, 4}), boundary.ErrUnsortedColumn)
	require.ErrorIs(t, boundary.ValidateColumn([]column.Index{-2}), boundary.ErrUnsortedColumn)
}
