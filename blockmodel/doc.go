// Package blockmodel holds the parameters of a stochastic block model (SBM):
// the ordered block partition and the block-to-block edge probability matrix.
//
// The package provides:
//
//   - Partition:  ordered block sizes, vertex→block lookup, split by fractions.
//   - ProbMatrix: square matrix of Bernoulli probabilities backed by gonum's
//     mat.Dense, validated to [0,1] and (for undirected models) symmetry.
//   - Perturb:    the density-preserving tau perturbation of a two-block matrix.
//   - ExpectedEdges / EdgeVariance / Trials: analytic edge statistics used by
//     tests and by the analysis package to judge sampled graphs.
//
// Nothing here samples; see builder.StochasticBlockModel for that.
//
// Errors are package sentinels prefixed with "blockmodel:"; branch on them
// with errors.Is.
package blockmodel
