// SPDX-License-Identifier: MIT

package reduction

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/phat/boundary"
	"github.com/katalvlaran/phat/column"
	"golang.org/x/sync/errgroup"
)

// noPartner marks an unused lowest-one lookup slot.
const noPartner = -1

// reducers maps every Algorithm to its implementation.
var reducers = [...]func(*run) error{
	Twist:            reduceTwist,
	Chunk:            reduceChunk,
	Standard:         reduceStandard,
	Row:              reduceRow,
	SpectralSequence: reduceSpectral,
}

// Reduce transforms m in place into a reduced matrix: afterwards no two
// nonempty columns share a pivot, and the pivots give the persistence pairs.
//
// Implementation:
//   - Stage 1: reject unknown algorithms and nil matrices.
//   - Stage 2: validate the ordered-complex invariant; for Twist, Chunk and
//     SpectralSequence additionally validate dimension consistency. Nothing
//     is modified when validation fails.
//   - Stage 3: run the algorithm and report counters to the Observer.
//
// Every algorithm and every representation yields the same pivots.
//
// Errors: ErrNilMatrix, ErrUnknownAlgorithm, boundary.ErrNotOrdered,
// boundary.ErrDimensionMismatch (all wrapped with the algorithm name).
func Reduce(m *boundary.Matrix, algo Algorithm, opts ...Option) error {
	if int(algo) >= len(reducers) {
		return reductionErrorf("Reduce", algo, ErrUnknownAlgorithm)
	}
	if m == nil {
		return reductionErrorf("Reduce", algo, ErrNilMatrix)
	}
	if err := m.Validate(); err != nil {
		return reductionErrorf("Reduce", algo, err)
	}
	if algo.dimensional() {
		if err := m.ValidateDimensions(); err != nil {
			return reductionErrorf("Reduce", algo, err)
		}
	}

	r := &run{algo: algo, m: m, opts: gatherOptions(opts...)}
	log := r.opts.logger
	start := time.Now()
	log.LogAttrs(context.Background(), slog.LevelDebug, "reduction started",
		slog.String("algorithm", algo.String()),
		slog.String("representation", m.Representation().String()),
		slog.Int("columns", m.NumCols()),
		slog.Int("workers", r.opts.workers))

	if err := reducers[algo](r); err != nil {
		return reductionErrorf("Reduce", algo, err)
	}

	found := countPivots(m)
	r.opts.observer.PairsFound(algo, found)
	log.LogAttrs(context.Background(), slog.LevelDebug, "reduction finished",
		slog.String("algorithm", algo.String()),
		slog.Int("pairs", found),
		slog.Duration("elapsed", time.Since(start)))

	return nil
}

// run carries the state shared by the phases of one Reduce call.
type run struct {
	algo Algorithm
	m    *boundary.Matrix
	opts Options
}

// phase times fn and reports it to the observer and logger. The phase is
// reported as finished even when fn fails; its error is returned.
func (r *run) phase(name string, dim int, fn func() (int, error)) error {
	r.opts.observer.PhaseStarted(r.algo, name, dim)
	start := time.Now()
	adds, err := fn()
	elapsed := time.Since(start)
	r.opts.observer.ColumnsAdded(r.algo, adds)
	r.opts.observer.PhaseFinished(r.algo, name, dim, elapsed)
	r.opts.logger.LogAttrs(context.Background(), slog.LevelDebug, "phase finished",
		slog.String("algorithm", r.algo.String()),
		slog.String("phase", name),
		slog.Int("dim", dim),
		slog.Int("additions", adds),
		slog.Duration("elapsed", elapsed))

	return err
}

// fanOut runs task(0..n-1) on at most workers goroutines and sums the
// additions they report. Wait is the barrier; the first task error is
// returned.
func fanOut(workers, n int, task func(i int) (int, error)) (int, error) {
	var adds atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			k, err := task(i)
			adds.Add(int64(k))

			return err
		})
	}
	err := g.Wait()

	return int(adds.Load()), err
}

// workspaces hands out per-goroutine workspaces. Pivots are sized to the
// matrix, so reusing them across tasks and passes avoids reallocation.
type workspaces struct{ pool sync.Pool }

func newWorkspaces(m *boundary.Matrix) *workspaces {
	ws := &workspaces{}
	ws.pool.New = func() any { return m.Workspace() }

	return ws
}

func (ws *workspaces) get() *boundary.Workspace { return ws.pool.Get().(*boundary.Workspace) }

// put flushes w so no pivot state survives the caller's barrier.
func (ws *workspaces) put(w *boundary.Workspace) {
	w.Release()
	ws.pool.Put(w)
}

// newLookup returns the lowest-one table: lookup[row] is the column whose
// pivot is row, or noPartner.
func newLookup(n int) []int {
	lookup := make([]int, n)
	for i := range lookup {
		lookup[i] = noPartner
	}

	return lookup
}

// reduceColumn adds lookup columns into j until its pivot is unmatched or
// drops below rowBegin. Returns the final pivot and the number of additions.
func reduceColumn(w *boundary.Workspace, j int, lookup []int, rowBegin column.Index) (column.Index, int) {
	adds := 0
	low := w.Lowest(j)
	for low != column.NoIndex && low >= rowBegin && lookup[low] != noPartner {
		w.Add(lookup[low], j)
		adds++
		low = w.Lowest(j)
	}

	return low, adds
}

func countPivots(m *boundary.Matrix) int {
	n := 0
	for j := 0; j < m.NumCols(); j++ {
		if empty, _ := m.IsEmpty(j); !empty {
			n++
		}
	}

	return n
}
