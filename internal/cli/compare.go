// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/phat/boundary"
	"github.com/katalvlaran/phat/codec"
	"github.com/katalvlaran/phat/pairs"
	"github.com/katalvlaran/phat/persistence"
	"github.com/katalvlaran/phat/reduction"
	"github.com/spf13/cobra"
)

// ErrDisagreement is returned by compare when some run differs from the
// reference pairs.
var ErrDisagreement = errors.New("results disagree")

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "compare <input>",
		Short: "Run every algorithm and representation and check they agree",
		Long: `Reduce the input with every algorithm on every column representation,
both directly and dualized, and compare the pairs against a standard
reduction on vector columns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.settings(cmd, rootOpts.Config)
			if err != nil {
				return err
			}
			m, err := codec.LoadMatrixFile(args[0], s.format)
			if err != nil {
				return err
			}

			return runCompare(cmd, rootOpts, s, m)
		},
	}
	flags.bindFormat(cmd.Flags())
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	cmd.MarkFlagsMutuallyExclusive("ascii", "binary", "format")

	return cmd
}

func runCompare(cmd *cobra.Command, rootOpts *RootOptions, s runSettings, m *boundary.Matrix) error {
	out := cmd.OutOrStdout()
	want, err := persistence.ComputeCopy(m.Convert(boundary.VectorVector), reduction.Standard)
	if err != nil {
		return err
	}
	want.Sort()
	fmt.Fprintf(out, "reference: %d columns, %d pairs\n", m.NumCols(), want.Len())

	failures := 0
	for _, dualize := range []bool{false, true} {
		for _, algo := range reduction.Algorithms() {
			for _, rep := range boundary.Representations() {
				start := time.Now()
				got, err := computeWith(m.Convert(rep), algo, dualize, s.reductionOptions()...)
				if err != nil {
					return err
				}
				verdict := "ok"
				if !want.Equal(got) {
					verdict = "MISMATCH"
					failures++
				}
				fmt.Fprintf(out, "%-28s %-22s dualize=%-5t %-8s %v\n",
					algo, rep, dualize, verdict, time.Since(start).Round(time.Microsecond))
			}
		}
	}
	rootOpts.Logger.Info("compare finished", "runs", 2*len(reduction.Algorithms())*len(boundary.Representations()),
		"failures", failures)
	if failures > 0 {
		return fmt.Errorf("compare: %d runs: %w", failures, ErrDisagreement)
	}

	return nil
}

func computeWith(m *boundary.Matrix, algo reduction.Algorithm, dualize bool, opts ...reduction.Option) (*pairs.Pairs, error) {
	if dualize {
		return persistence.ComputeDualized(m, algo, opts...)
	}
	ps, err := persistence.Compute(m, algo, opts...)
	if err != nil {
		return nil, err
	}
	ps.Sort()

	return ps, nil
}
