// SPDX-License-Identifier: MIT

package reduction

import "time"

// AllDimensions is the dimension reported for phases that are not
// restricted to one dimension (Standard, Row, the chunk compression step).
const AllDimensions = -1

// Observer receives progress events from a reduction run. Implementations
// must be safe for concurrent use: parallel algorithms report from worker
// goroutines.
type Observer interface {
	// PhaseStarted is called before a phase of algo runs on dimension dim.
	PhaseStarted(algo Algorithm, phase string, dim int)
	// PhaseFinished is called after the phase completed.
	PhaseFinished(algo Algorithm, phase string, dim int, elapsed time.Duration)
	// ColumnsAdded reports n column additions.
	ColumnsAdded(algo Algorithm, n int)
	// PairsFound reports the number of pairs of a finished run.
	PairsFound(algo Algorithm, n int)
}

type nopObserver struct{}

func (nopObserver) PhaseStarted(Algorithm, string, int)                 {}
func (nopObserver) PhaseFinished(Algorithm, string, int, time.Duration) {}
func (nopObserver) ColumnsAdded(Algorithm, int)                         {}
func (nopObserver) PairsFound(Algorithm, int)                           {}
