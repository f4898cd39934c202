// Package builder provides "functional-options"-style random graph
// constructors on top of core.Graph.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:   func(g *core.Graph, cfg builderConfig) error.
//     – BuildGraph:    creates a graph, resolves options, runs constructors in order.
//     – SBM:           one-call "generate(sizes, probs, seed) -> Graph".
//   - Constructors:
//     – StochasticBlockModel: block-structured Bernoulli sampler.
//     – RandomSparse:         Erdős–Rényi G(n,p), the one-block SBM.
//   - Configuration (BuilderOption):
//     – WithSeed / WithRand: per-call random source; there is no global RNG.
//     – WithIDScheme:        vertex index -> ID ("0","1",… by default).
//     – WithBlockKey:        metadata key for block membership ("block").
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolNumberIDFn (WithSymbNumb).
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order ⇒
//     identical vertex order, edge order and edge IDs.
//   - Fast-fail: parameters are validated before the graph is touched;
//     sentinel errors are wrapped with the constructor name.
//   - Option constructors panic on meaningless input (nil RNG, nil IDFn);
//     constructors themselves never panic.
package builder
