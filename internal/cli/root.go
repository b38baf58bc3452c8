// SPDX-License-Identifier: MIT

// Package cli implements the phat command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags and the state derived from them.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string

	// Set by the root pre-run hook.
	Config Config
	Logger *slog.Logger
}

// ValidLogFormats lists the accepted --log-format values.
var ValidLogFormats = []string{"text", "json"}

// NewRootCommand creates the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Config: DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "phat",
		Short: "Persistent homology pairs from boundary matrices",
		Long: `phat reduces boundary matrices of filtered cell complexes over GF(2)
and writes their persistence pairs.

Several reduction algorithms and column representations are available;
all of them produce the same pairs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML run configuration")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "text", "log format (text|json)")

	cmd.AddCommand(NewReduceCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewCompareCommand(opts))

	return cmd
}

// setup loads the configuration and builds the logger.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	if o.ConfigPath != "" {
		cfg, err := LoadConfig(o.ConfigPath)
		if err != nil {
			return err
		}
		o.Config = cfg
	}
	level := o.LogLevel
	if !cmd.Flags().Changed("log-level") && o.Config.LogLevel != "" {
		level = o.Config.LogLevel
	}
	logger, err := NewLogger(cmd.ErrOrStderr(), level, o.LogFormat)
	if err != nil {
		return err
	}
	o.Logger = logger

	return nil
}

// NewLogger builds a slog logger writing to w.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q: must be one of %v", format, ValidLogFormats)
	}
}
