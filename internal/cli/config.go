// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/phat/boundary"
	"github.com/katalvlaran/phat/codec"
	"github.com/katalvlaran/phat/reduction"
	"gopkg.in/yaml.v3"
)

// Config is the YAML run configuration. Command-line flags that are set
// explicitly take precedence over it.
type Config struct {
	Representation string `yaml:"representation"`
	Algorithm      string `yaml:"algorithm"`
	Dualize        bool   `yaml:"dualize"`
	Workers        int    `yaml:"workers"`
	ChunkSize      int    `yaml:"chunk_size"`
	Format         string `yaml:"format"`
	Compression    string `yaml:"compression"`
	LogLevel       string `yaml:"log_level"`
}

// DefaultConfig matches the library defaults, with binary files.
func DefaultConfig() Config {
	return Config{
		Representation: boundary.DefaultRepresentation.String(),
		Algorithm:      reduction.Twist.String(),
		Format:         codec.Binary.String(),
		Compression:    codec.DefaultCompression.String(),
		LogLevel:       "info",
	}
}

// LoadConfig reads path over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	_, err := c.resolve()

	return err
}

// runSettings is Config resolved to typed values.
type runSettings struct {
	rep         boundary.Representation
	algo        reduction.Algorithm
	dualize     bool
	workers     int
	chunkSize   int
	format      codec.Format
	compression codec.Compression
}

func (c Config) resolve() (runSettings, error) {
	var (
		s   runSettings
		err error
	)
	if s.rep, err = boundary.ParseRepresentation(c.Representation); err != nil {
		return s, err
	}
	if s.algo, err = reduction.ParseAlgorithm(c.Algorithm); err != nil {
		return s, err
	}
	if s.format, err = codec.ParseFormat(c.Format); err != nil {
		return s, err
	}
	if s.compression, err = codec.ParseCompression(c.Compression); err != nil {
		return s, err
	}
	s.dualize = c.Dualize
	s.workers = c.Workers
	s.chunkSize = c.ChunkSize
	if s.workers < 0 || s.chunkSize < 0 {
		return s, fmt.Errorf("workers and chunk size must not be negative")
	}

	return s, nil
}

func (s runSettings) reductionOptions(extra ...reduction.Option) []reduction.Option {
	opts := []reduction.Option{reduction.WithChunkSize(s.chunkSize)}
	if s.workers > 0 {
		opts = append(opts, reduction.WithWorkers(s.workers))
	}

	return append(opts, extra...)
}
