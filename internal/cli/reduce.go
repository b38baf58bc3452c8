// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/katalvlaran/phat/codec"
	"github.com/katalvlaran/phat/metrics"
	"github.com/katalvlaran/phat/pairs"
	"github.com/katalvlaran/phat/persistence"
	"github.com/katalvlaran/phat/reduction"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// NewReduceCommand creates the reduce command.
func NewReduceCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &runFlags{}
	var metricsPath string

	cmd := &cobra.Command{
		Use:   "reduce <input> <output>",
		Short: "Compute the persistence pairs of a boundary matrix",
		Long: `Read a boundary matrix, reduce it and write its persistence pairs.

Input and output share one format. Flags override the --config file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.settings(cmd, rootOpts.Config)
			if err != nil {
				return err
			}

			return runReduce(rootOpts, s, args[0], args[1], metricsPath)
		},
	}
	flags.bindReduction(cmd.Flags())
	flags.bindFormat(cmd.Flags())
	cmd.Flags().StringVar(&metricsPath, "metrics", "", "write Prometheus metrics to this textfile")
	cmd.MarkFlagsMutuallyExclusive("ascii", "binary", "format")

	return cmd
}

func runReduce(rootOpts *RootOptions, s runSettings, in, out, metricsPath string) error {
	log := rootOpts.Logger

	log.Info("reading input", "path", in, "format", s.format, "representation", s.rep)
	start := time.Now()
	m, err := codec.LoadMatrixFile(in, s.format, codec.WithRepresentation(s.rep))
	if err != nil {
		return err
	}
	log.Info("input read", "columns", m.NumCols(), "entries", m.NumEntries(),
		"elapsed", time.Since(start))

	extra := []reduction.Option{reduction.WithLogger(log)}
	var reg *prometheus.Registry
	if metricsPath != "" {
		reg = prometheus.NewRegistry()
		collector, err := metrics.NewCollector(reg)
		if err != nil {
			return err
		}
		extra = append(extra, reduction.WithObserver(collector))
	}

	log.Info("computing persistence pairs", "algorithm", s.algo, "dualize", s.dualize)
	start = time.Now()
	var ps *pairs.Pairs
	if s.dualize {
		ps, err = persistence.ComputeDualized(m, s.algo, s.reductionOptions(extra...)...)
	} else {
		ps, err = persistence.Compute(m, s.algo, s.reductionOptions(extra...)...)
	}
	if err != nil {
		return err
	}
	ps.Sort()
	log.Info("pairs computed", "pairs", ps.Len(), "elapsed", time.Since(start))

	if err := codec.SavePairsFile(out, ps, s.format, codec.WithCompression(s.compression)); err != nil {
		return err
	}
	log.Info("output written", "path", out)

	if reg != nil {
		if err := metrics.WriteTextfile(metricsPath, reg); err != nil {
			return fmt.Errorf("reduce: %w", err)
		}
	}

	return nil
}
