// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_block_model.go: stochastic block model constructor.
//
// Model:
//   • Vertices 0..N-1 are laid out block by block: the first sizes[0]
//     indexes form block 0, the next sizes[1] form block 1, and so on.
//   • Every admissible pair (i,j) is one independent Bernoulli trial with
//     success probability P[b(i)][b(j)], realized iff rng.Float64() < P.
//   • Undirected: pairs i<j (plus i==j when loops are allowed).
//     Directed:   ordered pairs i≠j (plus i==j when loops are allowed).
//
// Determinism:
//   • Trials are drawn in row-major pair order, so a fixed seed reproduces
//     the same edge set, edge order and edge IDs.
//
// Complexity:
//   • Time O(N²) trials, Space O(N + M).

package builder

import (
	"fmt"

	"github.com/baranwa2/RandomWalkGCN/blockmodel"
	"github.com/baranwa2/RandomWalkGCN/core"
)

// StochasticBlockModel returns a Constructor that samples one graph from the
// SBM described by block sizes and the block-to-block probability matrix.
//
// Each vertex carries its block index under the configured block key
// (WithBlockKey, default "block"). An unnamed graph is named SBMGraphName.
//
// Errors (wrapped as "StochasticBlockModel: ...: %w"):
//   - blockmodel.ErrEmptyPartition / ErrBadBlockSize: bad sizes.
//   - ErrInvalidProbability, blockmodel.ErrNaNInf, blockmodel.ErrNonSquare.
//   - ErrDimensionMismatch: len(sizes) != len(probs).
//   - ErrAsymmetricProbs: undirected graph with P != Pᵀ.
//   - ErrNeedRandSource: rng is nil and some P is strictly inside (0,1).
//   - ErrConstructFailed: core rejected a vertex or edge.
func StochasticBlockModel(sizes []int, probs [][]float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		part, err := blockmodel.NewPartition(sizes...)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodStochasticBlockModel, err)
		}
		pm, err := blockmodel.NewProbMatrix(probs)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodStochasticBlockModel, err)
		}

		return sampleBlockModel(g, cfg, part, pm, MethodStochasticBlockModel)
	}
}

// BlockModel is StochasticBlockModel for an already validated partition and
// matrix, such as the output of blockmodel.Perturb.
func BlockModel(part blockmodel.Partition, probs *blockmodel.ProbMatrix) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return sampleBlockModel(g, cfg, part, probs, MethodStochasticBlockModel)
	}
}

// sampleBlockModel validates the model against g and runs the Bernoulli trials.
func sampleBlockModel(g *core.Graph, cfg builderConfig, part blockmodel.Partition, pm *blockmodel.ProbMatrix, method string) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", method, ErrConstructFailed)
	}
	if err := blockmodel.Validate(part, pm, g.Directed()); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if cfg.rng == nil && !degenerate(pm) {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	n := part.Total()
	assign := part.Assignment()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %v: %w", method, ids[i], err, ErrConstructFailed)
		}
		if err := g.SetVertexAttr(ids[i], cfg.blockKey, assign[i]); err != nil {
			return fmt.Errorf("%s: SetVertexAttr(%s): %v: %w", method, ids[i], err, ErrConstructFailed)
		}
	}

	if g.Name() == "" {
		g.SetName(SBMGraphName)
	}

	directed, loops := g.Directed(), g.Looped()
	for i := 0; i < n; i++ {
		start := i + 1
		if directed {
			start = 0
		} else if loops {
			start = i
		}
		for j := start; j < n; j++ {
			if i == j && !loops {
				continue
			}
			if !trial(cfg, pm.At(assign[i], assign[j])) {
				continue
			}
			if _, err := g.AddEdge(ids[i], ids[j]); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %v: %w", method, ids[i], ids[j], err, ErrConstructFailed)
			}
		}
	}

	return nil
}

// trial reports one Bernoulli(p) outcome. With no rng only p ∈ {0,1}
// reaches here.
func trial(cfg builderConfig, p float64) bool {
	if cfg.rng == nil {
		return p >= 1
	}
	return cfg.rng.Float64() < p
}

// degenerate reports whether every entry of pm is exactly 0 or 1.
func degenerate(pm *blockmodel.ProbMatrix) bool {
	k := pm.Dim()
	for a := 0; a < k; a++ {
		for b := 0; b < k; b++ {
			if p := pm.At(a, b); p != 0 && p != 1 {
				return false
			}
		}
	}
	return true
}
