// SPDX-License-Identifier: MIT
// File: edges.go
// Role: edge insertion and queries, plus nextEdgeID().
//
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic ("e" + decimal).

package core

import (
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to and returns its ID. Missing endpoints
// are added as vertices. Undirected edges are mirrored in the adjacency.
//
// Errors:
//   - ErrEmptyVertexID: from or to is empty.
//   - ErrLoopNotAllowed: from == to and Looped() is false.
//   - ErrMultiEdgeNotAllowed: an edge from→to exists and Multigraph() is false.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Directed: g.directed}
	g.edges = append(g.edges, e)

	ensureAdjacency(g, from, to)
	g.adjacency[from][to][eid] = struct{}{}
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists. Undirected edges
// are mirrored, so HasEdge(u,v) == HasEdge(v,u) in undirected graphs.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns all edges in insertion order. The slice is a copy; the
// *Edge values are shared and must be treated as read-only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// SelfLoopCount returns the number of edges with From == To.
// Complexity: O(V).
func (g *Graph) SelfLoopCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	n := 0
	for id, toMap := range g.adjacency {
		n += len(toMap[id])
	}

	return n
}

// Clone returns a deep copy of the graph: flags, name, vertices with a
// one-level copy of their metadata, edges and adjacency. Edge IDs and the ID
// sequence are preserved.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := NewGraph()
	c.directed, c.allowLoops, c.allowMulti, c.name = g.directed, g.allowLoops, g.allowMulti, g.name
	c.order = make([]string, len(g.order))
	copy(c.order, g.order)
	for id, v := range g.vertices {
		md := make(map[string]interface{}, len(v.Metadata))
		for k, val := range v.Metadata {
			md[k] = val
		}
		c.vertices[id] = &Vertex{ID: id, Metadata: md}
	}

	c.nextEdgeID = atomic.LoadUint64(&g.nextEdgeID)
	c.edges = make([]*Edge, len(g.edges))
	for i, e := range g.edges {
		ce := *e
		c.edges[i] = &ce
	}
	for from, toMap := range g.adjacency {
		for to, set := range toMap {
			ensureAdjacency(c, from, to)
			for eid := range set {
				c.adjacency[from][to][eid] = struct{}{}
			}
		}
	}

	return c
}

// ensureAdjacency lazily allocates the from→to bucket. Caller holds muEdgeAdj.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// nextEdgeID returns a new unique textual edge ID without fmt allocations.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
