// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn ("0","1","2",...)
//   • rng      = nil (stochastic constructors require WithSeed/WithRand)
//   • blockKey = DefaultBlockKey ("block")

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for Bernoulli trials; nil means "no randomness".
	rng *rand.Rand
	// Vertex metadata key for block membership.
	blockKey string
}

// newBuilderConfig applies opts over the defaults, last-wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		blockKey: DefaultBlockKey,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.blockKey == "" {
		cfg.blockKey = DefaultBlockKey
	}

	return cfg
}
