// SPDX-License-Identifier: MIT
// Package: analysis
//
// inspect.go - per-block-pair density test of one sampled graph.
//
// For block pair (a,b) with T trials and model probability p, the realized
// edge count X is Binomial(T,p). The test statistic is
//
//	z = (X - T·p) / sqrt(T·p·(1-p))
//
// with two-sided p-value 2·(1-Φ(|z|)). Degenerate pairs (T==0, p∈{0,1})
// are exact: z=0 when X equals T·p, ±Inf otherwise.

package analysis

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/baranwa2/RandomWalkGCN/bfs"
	"github.com/baranwa2/RandomWalkGCN/blockmodel"
	"github.com/baranwa2/RandomWalkGCN/core"
)

// DefaultBlockKey is the vertex attribute read for block membership.
const DefaultBlockKey = "block"

// PairStat is the density comparison for one block pair.
type PairStat struct {
	A, B    int
	Edges   int64
	Trials  int64
	Prob    float64
	Density float64
	Z       float64
	PValue  float64
}

// Report is the outcome of Inspect.
type Report struct {
	Nodes      int
	Edges      int
	SelfLoops  int
	Directed   bool
	LoopsOK    bool
	WantSizes  []int
	BlockSizes []int
	// Unassigned lists vertices without a usable block attribute.
	Unassigned []string
	Pairs      []PairStat

	// ExpectedEdges and EdgeZ test the total edge count.
	ExpectedEdges float64
	EdgeZ         float64
	// Components counts connected components; 0 for directed graphs.
	Components    int
}

// Option configures Inspect.
type Option func(*options)

type options struct {
	ctx      context.Context
	blockKey string
}

// WithBlockKey sets the attribute read for block membership.
func WithBlockKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.blockKey = key
		}
	}
}

// WithContext bounds the connected-component sweep.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Inspect compares g with the model (part, probs). Structural problems
// (unknown blocks, wrong sizes) are recorded in the report for Check; only
// an invalid model, a nil graph or cancellation fail Inspect itself.
//
// Complexity: O(V + E) plus the component sweep.
func Inspect(g *core.Graph, part blockmodel.Partition, probs *blockmodel.ProbMatrix, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, fmt.Errorf("Inspect: %w", ErrNilGraph)
	}
	o := options{ctx: context.Background(), blockKey: DefaultBlockKey}
	for _, opt := range opts {
		opt(&o)
	}
	if err := blockmodel.Validate(part, probs, g.Directed()); err != nil {
		return nil, fmt.Errorf("Inspect: %w", err)
	}

	k := part.Len()
	mode := blockmodel.Mode{Directed: g.Directed(), Loops: g.Looped()}
	rep := &Report{
		Nodes:      g.VertexCount(),
		Edges:      g.EdgeCount(),
		SelfLoops:  g.SelfLoopCount(),
		Directed:   g.Directed(),
		LoopsOK:    g.Looped(),
		WantSizes:  append([]int(nil), part...),
		BlockSizes: make([]int, k),
	}

	block := make(map[string]int, rep.Nodes)
	for _, id := range g.Vertices() {
		b, ok := g.VertexIntAttr(id, o.blockKey)
		if !ok || b < 0 || b >= k {
			rep.Unassigned = append(rep.Unassigned, id)
			continue
		}
		block[id] = b
		rep.BlockSizes[b]++
	}

	counts := make([][]int64, k)
	for i := range counts {
		counts[i] = make([]int64, k)
	}
	for _, e := range g.Edges() {
		a, okA := block[e.From]
		b, okB := block[e.To]
		if !okA || !okB {
			continue
		}
		if !mode.Directed && a > b {
			a, b = b, a
		}
		counts[a][b]++
	}

	for a := 0; a < k; a++ {
		start := a
		if mode.Directed {
			start = 0
		}
		for b := start; b < k; b++ {
			rep.Pairs = append(rep.Pairs, pairStat(a, b, counts[a][b], blockmodel.Trials(part, a, b, mode), probs.At(a, b)))
		}
	}

	rep.ExpectedEdges = blockmodel.ExpectedEdges(part, probs, mode)
	rep.EdgeZ = zScore(float64(rep.Edges), rep.ExpectedEdges, blockmodel.EdgeVariance(part, probs, mode))

	if !g.Directed() {
		comps, err := bfs.Components(g, bfs.WithContext(o.ctx))
		if err != nil {
			return nil, fmt.Errorf("Inspect: %w", err)
		}
		rep.Components = len(comps)
	}

	return rep, nil
}

// pairStat fills the test statistic for one block pair.
func pairStat(a, b int, edges, trials int64, p float64) PairStat {
	s := PairStat{A: a, B: b, Edges: edges, Trials: trials, Prob: p, PValue: 1}
	if trials == 0 {
		return s
	}
	t := float64(trials)
	s.Density = float64(edges) / t
	s.Z = zScore(float64(edges), t*p, t*p*(1-p))
	s.PValue = twoSided(s.Z)

	return s
}

// zScore standardizes x against mean and variance; zero variance yields 0
// on an exact hit and ±Inf otherwise.
func zScore(x, mean, variance float64) float64 {
	d := x - mean
	if variance <= 0 {
		switch {
		case d == 0:
			return 0
		case d > 0:
			return math.Inf(1)
		default:
			return math.Inf(-1)
		}
	}
	return d / math.Sqrt(variance)
}

// twoSided returns 2·P(Z > |z|) for a standard normal Z.
func twoSided(z float64) float64 {
	return 2 * distuv.UnitNormal.Survival(math.Abs(z))
}

// Pair returns the statistic for (a,b); for undirected reports the pair is
// looked up as (min,max).
func (r *Report) Pair(a, b int) (PairStat, bool) {
	if !r.Directed && a > b {
		a, b = b, a
	}
	for _, s := range r.Pairs {
		if s.A == a && s.B == b {
			return s, true
		}
	}
	return PairStat{}, false
}
