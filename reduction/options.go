// SPDX-License-Identifier: MIT

// Package reduction: functional configuration of a reduction run.
//
// Design goals:
//   - Deterministic result: options change wall-clock time and logging only,
//     never the computed pairs.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package reduction

import (
	"io"
	"log/slog"
	"runtime"
)

// DefaultChunkSize selects the automatic chunk size: n / workers, or sqrt(n)
// with a single worker.
const DefaultChunkSize = 0

const (
	panicWorkersInvalid   = "reduction: WithWorkers: workers must be >= 1"
	panicChunkSizeInvalid = "reduction: WithChunkSize: size must be >= 0"
	panicLoggerNil        = "reduction: WithLogger: logger must not be nil"
	panicObserverNil      = "reduction: WithObserver: observer must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds resolved run settings. Fields are unexported.
type Options struct {
	workers   int
	chunkSize int
	logger    *slog.Logger
	observer  Observer
}

// DefaultWorkers is the worker count used when WithWorkers is not given.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// WithWorkers bounds the number of goroutines used by the parallel
// algorithms (Chunk, SpectralSequence). Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithChunkSize fixes the Chunk algorithm's chunk length; 0 selects the
// automatic size. Panics if size < 0.
func WithChunkSize(size int) Option {
	if size < 0 {
		panic(panicChunkSizeInvalid)
	}

	return func(o *Options) { o.chunkSize = size }
}

// WithLogger routes debug-level progress records to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithObserver attaches an Observer receiving phase timings and counters.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(panicObserverNil)
	}

	return func(o *Options) { o.observer = obs }
}

// discardLogger drops every record.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:   DefaultWorkers(),
		chunkSize: DefaultChunkSize,
		logger:    discardLogger,
		observer:  nopObserver{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
