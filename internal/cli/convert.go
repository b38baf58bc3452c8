// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/phat/codec"
	"github.com/spf13/cobra"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	var from, to, compression string

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a boundary matrix between file formats",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := codec.ParseFormat(from)
			if err != nil {
				return err
			}
			dst, err := codec.ParseFormat(to)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("compression") {
				compression = rootOpts.Config.Compression
			}
			c, err := codec.ParseCompression(compression)
			if err != nil {
				return err
			}

			m, err := codec.LoadMatrixFile(args[0], src)
			if err != nil {
				return err
			}
			if err := codec.SaveMatrixFile(args[1], m, dst, codec.WithCompression(c)); err != nil {
				return err
			}
			rootOpts.Logger.Info("converted", "from", src, "to", dst,
				"columns", m.NumCols(), "fingerprint", m.Fingerprint())

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", codec.ASCII.String(), "input format (ascii|binary|framed)")
	cmd.Flags().StringVar(&to, "to", codec.Binary.String(), "output format (ascii|binary|framed)")
	cmd.Flags().StringVar(&compression, "compression", codec.DefaultCompression.String(), "frame compression (none|zstd|s2|lz4)")

	return cmd
}
