// SPDX-License-Identifier: MIT
package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/phat/internal/fixture"
	"github.com/katalvlaran/phat/metrics"
	"github.com/katalvlaran/phat/reduction"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCollector_Reduce checks counters after reducing the triangle.
func TestCollector_Reduce(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	m := fixture.Triangle().Matrix()
	require.NoError(t, reduction.Reduce(m, reduction.Standard, reduction.WithObserver(c)))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	byName := map[string]bool{}
	for _, mf := range mfs {
		byName[mf.GetName()] = true
	}
	assert.True(t, byName["phat_phase_duration_seconds"])
	assert.True(t, byName["phat_column_additions_total"])
	assert.True(t, byName["phat_pairs_total"])

	n, err := testutil.GatherAndCount(reg, "phat_phase_duration_seconds", "phat_pairs_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// TestCollector_Values checks each observer call lands on its metric.
func TestCollector_Values(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	c.PhaseStarted(reduction.Twist, "twist", 2)
	c.ColumnsAdded(reduction.Twist, 5)
	c.ColumnsAdded(reduction.Twist, 2)
	c.PairsFound(reduction.Twist, 3)
	c.PhaseFinished(reduction.Twist, "twist", 2, 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range mfs {
		for _, metric := range mf.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				values[mf.GetName()] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				values[mf.GetName()] = metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				values[mf.GetName()] = float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}
	assert.Equal(t, 7.0, values["phat_column_additions_total"])
	assert.Equal(t, 3.0, values["phat_pairs_total"])
	assert.Equal(t, 0.0, values["phat_phases_running"])
	assert.Equal(t, 1.0, values["phat_phase_duration_seconds"])
}

// TestNewCollector_DoubleRegister checks registration conflicts surface.
func TestNewCollector_DoubleRegister(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	_, err := metrics.NewCollector(reg)
	require.NoError(t, err)
	_, err = metrics.NewCollector(reg)
	assert.Error(t, err)
}

// TestWriteTextfile checks the textfile dump.
func TestWriteTextfile(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	require.NoError(t, err)
	c.PairsFound(reduction.Row, 4)

	path := filepath.Join(t.TempDir(), "phat.prom")
	require.NoError(t, metrics.WriteTextfile(path, reg))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `phat_pairs_total{algorithm="row_reduction"} 4`)
}
