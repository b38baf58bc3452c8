// SPDX-License-Identifier: MIT
// Package reduction_test contains test helpers
//
// Purpose:
//   - Extract pivots from reduced matrices without going through the
//     persistence package.
//   - Provide a concurrency-safe recording Observer.

package reduction_test

import (
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/phat/boundary"
	"github.com/katalvlaran/phat/column"
	"github.com/katalvlaran/phat/reduction"
	"github.com/stretchr/testify/require"
)

// pivot is one (low, column) pair of a reduced matrix.
type pivot struct{ low, col column.Index }

// pivots lists (low(j), j) for every nonempty column in column order and
// fails the test if two columns share a pivot.
func pivots(t testing.TB, m *boundary.Matrix) []pivot {
	t.Helper()
	var out []pivot
	seen := map[column.Index]int{}
	for j := 0; j < m.NumCols(); j++ {
		low, err := m.MaxIndex(j)
		if err != nil {
			require.ErrorIs(t, err, boundary.ErrEmptyColumn)
			continue
		}
		if prev, dup := seen[low]; dup {
			t.Fatalf("columns %d and %d share pivot %d", prev, j, low)
		}
		seen[low] = j
		out = append(out, pivot{low, column.Index(j)})
	}

	return out
}

// MustReduce reduces m or fails the test.
func MustReduce(t testing.TB, m *boundary.Matrix, a reduction.Algorithm, opts ...reduction.Option) {
	t.Helper()
	require.NoError(t, reduction.Reduce(m, a, opts...), a.String())
}

// recorder is an Observer that keeps every event.
type recorder struct {
	mu       sync.Mutex
	started  []string
	finished []string
	adds     int
	pairs    int
}

func (r *recorder) PhaseStarted(_ reduction.Algorithm, phase string, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, phase)
}

func (r *recorder) PhaseFinished(_ reduction.Algorithm, phase string, _ int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, phase)
}

func (r *recorder) ColumnsAdded(_ reduction.Algorithm, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adds += n
}

func (r *recorder) PairsFound(_ reduction.Algorithm, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pairs += n
}
