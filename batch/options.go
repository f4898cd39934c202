// SPDX-License-Identifier: MIT
// Package: batch
//
// options.go - functional options for Run.
//
// Invalid values are recorded and surfaced as ErrOptionViolation by Run.

package batch

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/baranwa2/RandomWalkGCN/builder"
	"github.com/baranwa2/RandomWalkGCN/graphio"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("batch: invalid option supplied")

// Option configures Run.
type Option func(*Options)

// Options holds the resolved Run settings.
type Options struct {
	Dir      string
	Codec    graphio.Codec
	Seed     int64
	SeedMax  int
	Workers  int
	Manifest string
	BlockKey string
	Logger   zerolog.Logger

	seedSet bool
	err     error
}

// DefaultOptions writes JSON to the working directory, sequentially, with a
// clock-derived master seed and no logging.
func DefaultOptions() Options {
	return Options{
		Dir:      ".",
		Codec:    graphio.JSON{},
		SeedMax:  DefaultSeedMax,
		Workers:  1,
		BlockKey: builder.DefaultBlockKey,
		Logger:   zerolog.Nop(),
	}
}

// WithDir sets the output directory.
func WithDir(dir string) Option {
	return func(o *Options) {
		if dir != "" {
			o.Dir = dir
		}
	}
}

// WithCodec sets the output codec.
func WithCodec(c graphio.Codec) Option {
	return func(o *Options) {
		if c == nil {
			o.err = fmt.Errorf("%w: nil codec", ErrOptionViolation)
			return
		}
		o.Codec = c
	}
}

// WithFormat selects the codec by name ("json", "gob").
func WithFormat(format string) Option {
	return func(o *Options) {
		c, err := graphio.CodecFor(format)
		if err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.Codec = c
	}
}

// WithMasterSeed fixes the master seed. Any value, 0 included, is used
// as given; without this option Run derives one from the clock.
func WithMasterSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.seedSet = true
	}
}

// WithSeedMax sets the exclusive upper bound of per-graph seeds.
func WithSeedMax(max int) Option {
	return func(o *Options) {
		if max < 1 {
			o.err = fmt.Errorf("%w: seed max must be ≥ 1 (%d)", ErrOptionViolation, max)
			return
		}
		o.SeedMax = max
	}
}

// WithWorkers bounds the number of graphs generated concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithManifest writes a JSON manifest to path after a successful run.
func WithManifest(path string) Option {
	return func(o *Options) {
		o.Manifest = path
	}
}

// WithBlockKey sets the vertex attribute carrying block membership.
func WithBlockKey(key string) Option {
	return func(o *Options) {
		if key != "" {
			o.BlockKey = key
		}
	}
}

// WithLogger sets the logger for per-graph progress.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
