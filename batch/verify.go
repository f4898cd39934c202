// SPDX-License-Identifier: MIT
// Package: batch
//
// verify.go - re-read a generated dataset and test it against its plan.

package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/baranwa2/RandomWalkGCN/analysis"
	"github.com/baranwa2/RandomWalkGCN/blockmodel"
	"github.com/baranwa2/RandomWalkGCN/graphio"
)

// PhaseSummary aggregates the verified graphs of one phase.
type PhaseSummary struct {
	Phase         string
	Graphs        int
	ExpectedEdges float64
	Edges         analysis.Summary
	Components    analysis.Summary
}

// Verify decodes graph_1..graph_Total from the configured directory and
// codec, inspects each against its phase matrix, and summarizes edge and
// component counts per phase. Every failing graph contributes one wrapped
// error; Verify returns the summaries together with the joined errors.
//
// alpha is the family-wise level over the whole dataset: each of the
// Total × Report.Tests() tests runs at alpha divided by that count
// (Bonferroni), so a dataset drawn from plan fails with probability at
// most alpha.
func Verify(ctx context.Context, plan Plan, alpha float64, opts ...Option) ([]PhaseSummary, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := analysis.ValidAlpha(alpha); err != nil {
		return nil, fmt.Errorf("Verify: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("Verify: %w", err)
	}

	log := o.Logger
	var (
		failures  []error
		summaries []PhaseSummary
		index     = 1
	)
	for _, ph := range plan.Phases {
		edges := make([]float64, 0, ph.Count)
		comps := make([]float64, 0, ph.Count)
		for k := 0; k < ph.Count; k++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			path := graphio.Path(o.Dir, index, o.Codec)
			g, err := graphio.ReadFile(path, o.BlockKey, o.Codec)
			if err != nil {
				return nil, fmt.Errorf("Verify: %w", err)
			}
			rep, err := analysis.Inspect(g, plan.Partition, ph.Probs,
				analysis.WithBlockKey(o.BlockKey), analysis.WithContext(ctx))
			if err != nil {
				return nil, fmt.Errorf("Verify: graph %d: %w", index, err)
			}
			perTest := alpha / float64(plan.Total()*rep.Tests())
			if err := rep.Check(perTest); err != nil {
				log.Warn().Err(err).Int("index", index).Str("file", path).Msg("graph failed check")
				failures = append(failures, fmt.Errorf("graph %d: %w", index, err))
			}
			edges = append(edges, float64(rep.Edges))
			comps = append(comps, float64(rep.Components))
			index++
		}

		ps := PhaseSummary{
			Phase:         ph.Name,
			Graphs:        ph.Count,
			ExpectedEdges: blockmodel.ExpectedEdges(plan.Partition, ph.Probs, blockmodel.Mode{}),
		}
		if len(edges) > 0 {
			s, err := analysis.Summarize(edges)
			if err != nil {
				return nil, fmt.Errorf("Verify: phase %s: %w", ph.Name, err)
			}
			ps.Edges = s
			if ps.Components, err = analysis.Summarize(comps); err != nil {
				return nil, fmt.Errorf("Verify: phase %s: %w", ph.Name, err)
			}
		}
		summaries = append(summaries, ps)
		log.Info().
			Str("phase", ph.Name).
			Int("graphs", ph.Count).
			Float64("expected_edges", ps.ExpectedEdges).
			Float64("mean_edges", ps.Edges.Mean).
			Float64("sd_edges", ps.Edges.StdDev).
			Float64("mean_components", ps.Components.Mean).
			Float64("max_components", ps.Components.Max).
			Msg("phase verified")
	}

	return summaries, errors.Join(failures...)
}
