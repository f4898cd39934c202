// SPDX-License-Identifier: MIT
// Package: graphio
//
// document.go - node-link export of core.Graph and the inverse import.
//
// Contract:
//   - Every vertex must carry an int block attribute under blockKey.
//   - Undirected edges are emitted once, as stored (From, To).
//   - ToGraph rebuilds the same vertex order, edge order and block metadata;
//     loops are allowed on the rebuilt graph only if a link needs them.

package graphio

import (
	"fmt"

	"github.com/baranwa2/RandomWalkGCN/core"
)

// Document is the serialized form of one sampled graph.
type Document struct {
	Directed   bool       `json:"directed"`
	Multigraph bool       `json:"multigraph"`
	Graph      GraphAttrs `json:"graph"`
	Nodes      []Node     `json:"nodes"`
	Links      []Link     `json:"links"`
}

// GraphAttrs holds graph-level attributes.
type GraphAttrs struct {
	Name      string     `json:"name"`
	Partition [][]string `json:"partition"`
}

// Node is one vertex with its block index.
type Node struct {
	ID    string `json:"id"`
	Block int    `json:"block"`
}

// Link is one edge.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// FromGraph exports g into a Document, reading block membership from
// blockKey.
//
// Errors: ErrNilGraph, ErrMissingBlock.
// Complexity: O(V + E + B).
func FromGraph(g *core.Graph, blockKey string) (*Document, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGraph: %w", ErrNilGraph)
	}
	groups, missing := g.GroupBy(blockKey)
	if len(missing) > 0 {
		return nil, fmt.Errorf("FromGraph: vertex %q: %w", missing[0], ErrMissingBlock)
	}

	doc := &Document{
		Directed:   g.Directed(),
		Multigraph: g.Multigraph(),
		Graph:      GraphAttrs{Name: g.Name(), Partition: partition(groups)},
	}

	verts := g.Vertices()
	doc.Nodes = make([]Node, len(verts))
	for i, id := range verts {
		b, _ := g.VertexIntAttr(id, blockKey)
		doc.Nodes[i] = Node{ID: id, Block: b}
	}

	edges := g.Edges()
	doc.Links = make([]Link, len(edges))
	for i, e := range edges {
		doc.Links[i] = Link{Source: e.From, Target: e.To}
	}

	return doc, nil
}

// partition lays groups out by block index 0..max; absent indexes become
// empty blocks. Negative block indexes are not representable and are skipped.
func partition(groups map[int][]string) [][]string {
	size := 0
	for b := range groups {
		if b+1 > size {
			size = b + 1
		}
	}
	out := make([][]string, size)
	for i := range out {
		if ids, ok := groups[i]; ok {
			out[i] = ids
		} else {
			out[i] = []string{}
		}
	}
	return out
}

// ToGraph rebuilds a core.Graph from d, storing block membership under
// blockKey.
//
// Errors: ErrNilGraph, ErrBadDocument.
// Complexity: O(V + E).
func (d *Document) ToGraph(blockKey string) (*core.Graph, error) {
	if d == nil {
		return nil, fmt.Errorf("ToGraph: %w", ErrNilGraph)
	}

	opts := []core.GraphOption{core.WithDirected(d.Directed), core.WithName(d.Graph.Name)}
	if d.Multigraph {
		opts = append(opts, core.WithMultiEdges())
	}
	for _, l := range d.Links {
		if l.Source == l.Target {
			opts = append(opts, core.WithLoops())
			break
		}
	}
	g := core.NewGraph(opts...)

	for _, n := range d.Nodes {
		if g.HasVertex(n.ID) {
			return nil, fmt.Errorf("ToGraph: duplicate node %q: %w", n.ID, ErrBadDocument)
		}
		if err := g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("ToGraph: node %q: %v: %w", n.ID, err, ErrBadDocument)
		}
		if err := g.SetVertexAttr(n.ID, blockKey, n.Block); err != nil {
			return nil, fmt.Errorf("ToGraph: node %q: %v: %w", n.ID, err, ErrBadDocument)
		}
	}
	for i, l := range d.Links {
		if !g.HasVertex(l.Source) || !g.HasVertex(l.Target) {
			return nil, fmt.Errorf("ToGraph: link %d (%s,%s) to unknown node: %w", i, l.Source, l.Target, ErrBadDocument)
		}
		if _, err := g.AddEdge(l.Source, l.Target); err != nil {
			return nil, fmt.Errorf("ToGraph: link %d (%s,%s): %v: %w", i, l.Source, l.Target, err, ErrBadDocument)
		}
	}

	return g, nil
}
