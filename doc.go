// Package randomwalkgcn generates synthetic community-structured graphs from
// the stochastic block model (SBM) as benchmark datasets for community
// detection and graph learning.
//
// 🚀 What is in the box?
//
//	• Core primitives: thread-safe in-memory graph with per-vertex metadata
//	• Block models: partitions, probability matrices, tau perturbation,
//	  analytic edge expectations (gonum/mat)
//	• Builders: StochasticBlockModel and Erdős–Rényi as functional-option
//	  constructors with a per-call random source
//	• Datasets: a phase-driven batch driver writing graph_<i>.json|gob files,
//	  sequential or bounded-parallel, with an optional run manifest
//	• Verification: per-block-pair density z-tests, connected components,
//	  per-phase edge-count summaries
//
// Packages:
//
//	core/        Graph, Vertex, Edge; vertex attributes and grouping
//	blockmodel/  Partition, ProbMatrix, Perturb, ExpectedEdges
//	builder/     BuildGraph, StochasticBlockModel, RandomSparse, SBM
//	graphio/     node-link Document, JSON and gob codecs, file I/O
//	bfs/         breadth-first search and connected components
//	analysis/    Inspect, Report.Check, Summarize
//	batch/       Plan, Phase, Run, Verify, Manifest
//	config/      viper-backed settings and zerolog logger
//	cmd/sbmgen/  CLI: generate, verify
//
// Quick start:
//
//	g, err := builder.SBM([]int{400, 600}, [][]float64{{0.6, 0.1}, {0.1, 0.3}}, 42)
//
// or, for the full two-regime dataset of 200 graphs:
//
//	sbmgen generate --out data --seed 42
//	sbmgen verify --dir data
package randomwalkgcn
