// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Implementations attach context as "<Method>: <detail>: %w".
//   • Model validation sentinels are shared with blockmodel so that
//     errors.Is(err, builder.ErrInvalidProbability) and
//     errors.Is(err, blockmodel.ErrInvalidProbability) agree.

package builder

import (
	"errors"

	"github.com/baranwa2/RandomWalkGCN/blockmodel"
)

// ErrTooFewVertices indicates that a size parameter is below the allowed minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = blockmodel.ErrInvalidProbability

// ErrDimensionMismatch indicates that the number of blocks differs from the
// probability matrix dimension.
var ErrDimensionMismatch = blockmodel.ErrDimensionMismatch

// ErrAsymmetricProbs indicates a non-symmetric matrix for an undirected graph.
var ErrAsymmetricProbs = blockmodel.ErrAsymmetric

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the constructor could not mutate the graph
// (nil constructor, nil graph, or a core error while adding vertices/edges).
var ErrConstructFailed = errors.New("builder: construction failed")
