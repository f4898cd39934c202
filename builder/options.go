// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Seeding is explicit via WithSeed or WithRand; no hidden globals.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil.
// A *rand.Rand is not goroutine-safe; do not share one across concurrent builds.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh *rand.Rand seeded with seed, private to this build.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = NewRand(seed)
	}
}

// WithBlockKey sets the vertex metadata key used for block membership.
// An empty key resolves to DefaultBlockKey.
func WithBlockKey(key string) BuilderOption {
	return func(c *builderConfig) {
		c.blockKey = key
	}
}

// NewRand returns the deterministic source used by WithSeed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
