// SPDX-License-Identifier: MIT

// Package metrics exports reduction progress as Prometheus metrics.
//
// A Collector implements reduction.Observer; attach it with
// reduction.WithObserver. It records:
//
//   - phat_phase_duration_seconds{algorithm,phase}: histogram of phase times.
//   - phat_column_additions_total{algorithm}: column additions performed.
//   - phat_pairs_total{algorithm}: pairs found by finished runs.
//   - phat_phases_running{algorithm}: phases currently in flight.
//
// WriteTextfile dumps the registry in the node_exporter textfile format,
// which suits one-shot command-line runs.
package metrics

import (
	"fmt"
	"time"

	"github.com/katalvlaran/phat/reduction"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "phat"

// Collector is a reduction.Observer backed by Prometheus metrics.
type Collector struct {
	phaseSeconds *prometheus.HistogramVec
	additions    *prometheus.CounterVec
	pairs        *prometheus.CounterVec
	running      *prometheus.GaugeVec
}

var _ reduction.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		phaseSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Duration of reduction phases.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"algorithm", "phase"}),
		additions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "column_additions_total",
			Help:      "Column additions performed by reductions.",
		}, []string{"algorithm"}),
		pairs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pairs_total",
			Help:      "Persistence pairs found by finished reductions.",
		}, []string{"algorithm"}),
		running: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "phases_running",
			Help:      "Reduction phases currently running.",
		}, []string{"algorithm"}),
	}
	for _, col := range []prometheus.Collector{c.phaseSeconds, c.additions, c.pairs, c.running} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: NewCollector: %w", err)
		}
	}

	return c, nil
}

// PhaseStarted implements reduction.Observer.
func (c *Collector) PhaseStarted(algo reduction.Algorithm, _ string, _ int) {
	c.running.WithLabelValues(algo.String()).Inc()
}

// PhaseFinished implements reduction.Observer.
func (c *Collector) PhaseFinished(algo reduction.Algorithm, phase string, _ int, elapsed time.Duration) {
	c.running.WithLabelValues(algo.String()).Dec()
	c.phaseSeconds.WithLabelValues(algo.String(), phase).Observe(elapsed.Seconds())
}

// ColumnsAdded implements reduction.Observer.
func (c *Collector) ColumnsAdded(algo reduction.Algorithm, n int) {
	c.additions.WithLabelValues(algo.String()).Add(float64(n))
}

// PairsFound implements reduction.Observer.
func (c *Collector) PairsFound(algo reduction.Algorithm, n int) {
	c.pairs.WithLabelValues(algo.String()).Add(float64(n))
}

// WriteTextfile writes every metric gathered by g to path.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: WriteTextfile: %w", err)
	}

	return nil
}
