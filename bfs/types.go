// SPDX-License-Identifier: MIT
package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartVertexNotFound reports a start ID missing from the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil reports a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation wraps every rejected Option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrDirectedGraph is returned by Components for directed graphs.
	ErrDirectedGraph = errors.New("bfs: components need an undirected graph")
)

// Option mutates Options. Invalid values are recorded and reported
// as ErrOptionViolation by the traversal that receives them.
type Option func(*Options)

// Options carries the hooks and limits of one traversal.
type Options struct {
	Ctx context.Context

	// OnEnqueue fires when a vertex joins the frontier at depth.
	OnEnqueue func(id string, depth int)
	// OnDequeue fires when a vertex leaves the frontier.
	OnDequeue func(id string, depth int)
	// OnVisit fires after OnDequeue; a non-nil error aborts the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth bounds expansion when positive. Zero means unbounded.
	MaxDepth int

	// FilterNeighbor drops the edge curr->neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

func defaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(string, string) bool { return true },
	}
}

// WithContext replaces the background context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs the visit hook; its error stops the traversal.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits expansion to d edges from the start; 0 lifts the
// limit and a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs an edge predicate. nil is ignored.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is the BFS tree rooted at the start vertex. Order lists
// vertices as visited, Depth holds hop counts and Parent the tree edges.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo walks Parent back from dest and returns the start..dest path.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	var rev []string
	for cur, ok := dest, true; ok; cur, ok = r.Parent[cur] {
		rev = append(rev, cur)
	}
	path := make([]string, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}
	return path, nil
}
