// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/phat/codec"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// runFlags are the per-command overrides of Config.
type runFlags struct {
	representation string
	algorithm      string
	dualize        bool
	workers        int
	chunkSize      int
	format         string
	compression    string
	ascii          bool
	binary         bool
}

func (f *runFlags) bindReduction(fs *pflag.FlagSet) {
	fs.StringVar(&f.representation, "representation", "", "column representation (e.g. bit_tree_pivot_column, vector_vector)")
	fs.StringVar(&f.algorithm, "algorithm", "", "reduction algorithm (twist, chunk, standard, row, spectral_sequence)")
	fs.BoolVar(&f.dualize, "dualize", false, "reduce the anti-transposed matrix")
	fs.IntVar(&f.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	fs.IntVar(&f.chunkSize, "chunk-size", 0, "chunk size of the chunk algorithm (0 = automatic)")
}

func (f *runFlags) bindFormat(fs *pflag.FlagSet) {
	fs.StringVar(&f.format, "format", "", "file format (ascii|binary|framed)")
	fs.StringVar(&f.compression, "compression", "", "frame compression (none|zstd|s2|lz4)")
	fs.BoolVar(&f.ascii, "ascii", false, "shorthand for --format ascii")
	fs.BoolVar(&f.binary, "binary", false, "shorthand for --format binary")
}

// settings applies explicitly set flags over cfg.
func (f *runFlags) settings(cmd *cobra.Command, cfg Config) (runSettings, error) {
	fs := cmd.Flags()
	if fs.Changed("representation") {
		cfg.Representation = f.representation
	}
	if fs.Changed("algorithm") {
		cfg.Algorithm = f.algorithm
	}
	if fs.Changed("dualize") {
		cfg.Dualize = f.dualize
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("chunk-size") {
		cfg.ChunkSize = f.chunkSize
	}
	if fs.Changed("format") {
		cfg.Format = f.format
	}
	if fs.Changed("compression") {
		cfg.Compression = f.compression
	}
	switch {
	case f.ascii:
		cfg.Format = codec.ASCII.String()
	case f.binary:
		cfg.Format = codec.Binary.String()
	}

	return cfg.resolve()
}
