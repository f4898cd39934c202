// SPDX-License-Identifier: MIT
// File: vertices.go
// Role: vertex lifecycle, attributes and degree queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.

package core

import "sort"

// AddVertex inserts a vertex if missing. Adding an existing vertex is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.order = append(g.order, id)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, len(g.order))
	copy(ids, g.order)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// SetVertexAttr stores value under key in the vertex metadata.
//
// Errors:
//   - ErrEmptyVertexID, ErrEmptyAttrKey, ErrVertexNotFound.
func (g *Graph) SetVertexAttr(id, key string, value interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if key == "" {
		return ErrEmptyAttrKey
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata[key] = value

	return nil
}

// VertexAttr returns the metadata value stored under key for vertex id.
// The boolean is false when the vertex or the key is absent.
func (g *Graph) VertexAttr(id, key string) (interface{}, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}
	val, ok := v.Metadata[key]

	return val, ok
}

// VertexIntAttr is VertexAttr narrowed to int values. Values decoded from
// JSON arrive as float64 or int64 and are converted when integral.
func (g *Graph) VertexIntAttr(id, key string) (int, bool) {
	raw, ok := g.VertexAttr(id, key)
	if !ok {
		return 0, false
	}
	switch x := raw.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case float64:
		if x == float64(int(x)) {
			return int(x), true
		}
	}

	return 0, false
}

// GroupBy partitions vertex IDs by the int attribute key. Vertices lacking
// the attribute are returned in missing. Keys of groups are attribute values;
// each group preserves insertion order.
// Complexity: O(V).
func (g *Graph) GroupBy(key string) (groups map[int][]string, missing []string) {
	g.muVert.RLock()
	order := make([]string, len(g.order))
	copy(order, g.order)
	g.muVert.RUnlock()

	groups = make(map[int][]string)
	for _, id := range order {
		b, ok := g.VertexIntAttr(id, key)
		if !ok {
			missing = append(missing, id)
			continue
		}
		groups[b] = append(groups[b], id)
	}

	return groups, missing
}

// Degree returns the number of edge endpoints incident to id. For directed
// graphs in and out are reported separately and deg = in + out. An undirected
// self-loop counts twice.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg(id)) for undirected graphs, O(E) for directed ones.
func (g *Graph) Degree(id string) (in, out, deg int, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, ErrVertexNotFound
	}

	if !g.directed {
		for to, set := range g.adjacency[id] {
			if to == id {
				deg += 2 * len(set)
				continue
			}
			deg += len(set)
		}
		return 0, 0, deg, nil
	}

	for _, set := range g.adjacency[id] {
		out += len(set)
	}
	for _, toMap := range g.adjacency {
		in += len(toMap[id])
	}

	return in, out, in + out, nil
}

// NeighborIDs returns the unique, sorted IDs reachable from id by one edge.
// For undirected graphs this is the symmetric neighborhood.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]string, 0, len(g.adjacency[id]))
	for to, set := range g.adjacency[id] {
		if len(set) > 0 {
			ids = append(ids, to)
		}
	}
	sort.Strings(ids)

	return ids, nil
}
