// SPDX-License-Identifier: MIT
// Package core defines the Graph, Vertex and Edge types, graph options,
// sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrEmptyAttrKey indicates an attribute write with an empty key.
	ErrEmptyAttrKey = errors.New("core: attribute key is empty")
)

// Vertex represents a node in the graph.
//
// Metadata stores per-vertex attributes such as block membership. It is
// copied (one level deep) by Clone.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary key-value attributes.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed is true for one-way edges. It mirrors the graph mode.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithName sets the graph-level name.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects the vertex catalog and insertion order; muEdgeAdj protects
// the edge list and adjacency.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed   bool
	allowMulti bool
	allowLoops bool
	name       string

	vertices map[string]*Vertex
	order    []string

	nextEdgeID uint64
	edges      []*Edge

	// adjacency[from][to][edgeID]
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. By default the graph is undirected, with
// no loops and no multi-edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Name returns the graph-level name ("" if unset).
func (g *Graph) Name() string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.name
}

// SetName replaces the graph-level name.
func (g *Graph) SetName(name string) {
	g.muVert.Lock()
	g.name = name
	g.muVert.Unlock()
}
