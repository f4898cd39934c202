// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go: Erdős–Rényi G(n,p) as the one-block SBM.
//
// Contract:
//   • n ≥ MinRandomSparseVertices, p ∈ [0,1].
//   • rng is required unless p ∈ {0,1}.
//   • Same trial order and acceptance rule as StochasticBlockModel, so
//     RandomSparse(n,p) and StochasticBlockModel([n], [[p]]) with equal
//     seeds produce identical graphs.

package builder

import (
	"fmt"
	"math"

	"github.com/baranwa2/RandomWalkGCN/blockmodel"
	"github.com/baranwa2/RandomWalkGCN/core"
)

// RandomSparse returns a Constructor that samples G(n,p).
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < %d: %w", MethodRandomSparse, n, MinRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%v: %w", MethodRandomSparse, p, ErrInvalidProbability)
		}
		part, err := blockmodel.NewPartition(n)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, err)
		}
		pm, err := blockmodel.NewProbMatrix([][]float64{{p}})
		if err != nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, err)
		}

		return sampleBlockModel(g, cfg, part, pm, MethodRandomSparse)
	}
}
