// Package core provides the thread-safe in-memory Graph that every sampler,
// codec and analysis in this module operates on.
//
// The Graph G = (V,E) supports:
//
//   - Undirected (default) vs. directed edges (WithDirected)
//   - Self-loops, rejected unless WithLoops is set
//   - Parallel edges, rejected unless WithMultiEdges is set
//   - Per-vertex attributes (Vertex.Metadata), e.g. the "block" membership
//     recorded by the stochastic block model sampler
//   - Graph-level name (SetName/Name), carried through serialization
//
// Storage:
//
//	adjacency[from][to][edgeID] = struct{}{}   // undirected edges are mirrored
//	order  []string                            // vertex insertion order
//	edges  []*Edge                             // edge insertion order
//
// Determinism:
//
//	Vertices() and Edges() return insertion order, so a graph built by a
//	deterministic constructor enumerates identically across runs. NeighborIDs()
//	returns lexicographically sorted IDs.
//
// Concurrency:
//
//	muVert guards the vertex catalog, muEdgeAdj guards edges and adjacency.
//	Lock order is always muVert -> muEdgeAdj.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//	ErrEmptyAttrKey        – zero-length attribute key
package core
