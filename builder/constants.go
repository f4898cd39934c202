// SPDX-License-Identifier: MIT
// Package: builder
//
// constants.go: method names and defaults shared by constructors.

package builder

// Method names used to prefix errors with the constructor name.
const (
	// MethodStochasticBlockModel is the canonical name for the StochasticBlockModel constructor.
	MethodStochasticBlockModel = "StochasticBlockModel"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodBuildGraph is the canonical name for the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
)

// DefaultBlockKey is the vertex metadata key holding block membership.
const DefaultBlockKey = "block"

// SBMGraphName is the graph name assigned by StochasticBlockModel when the
// target graph has none.
const SBMGraphName = "stochastic_block_model"

// MinRandomSparseVertices is the smallest n accepted by RandomSparse.
const MinRandomSparseVertices = 1
