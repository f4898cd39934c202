// SPDX-License-Identifier: MIT
// Package: batch
//
// run.go - the batch driver.
//
// Contract:
//   - Seeds are drawn for every index before any sampling, so output does
//     not depend on Workers.
//   - Each graph owns its *rand.Rand; nothing is shared between graphs.
//   - The first error aborts the run and is returned; files already written
//     stay on disk.

package batch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/baranwa2/RandomWalkGCN/builder"
	"github.com/baranwa2/RandomWalkGCN/graphio"
)

// job is one graph to generate.
type job struct {
	index int
	phase Phase
	seed  int64
}

// Run generates every graph of plan and returns the run manifest. The
// manifest is also written to disk when WithManifest is set.
//
// Errors: ErrOptionViolation, plan validation errors, ctx.Err(), and any
// sampling or filesystem error (wrapped with the graph index).
func Run(ctx context.Context, plan Plan, opts ...Option) (*Manifest, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	log := o.Logger
	master := o.Seed
	if !o.seedSet {
		master = clockSeed()
		log.Info().Int64("master_seed", master).Msg("derived master seed from clock")
	}

	jobs := schedule(plan, Seeds(master, plan.Total(), o.SeedMax))
	records := make([]Record, len(jobs))
	started := time.Now()

	runOne := func(ctx context.Context, j job) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(j.seed), builder.WithBlockKey(o.BlockKey)},
			builder.BlockModel(plan.Partition, j.phase.Probs))
		if err != nil {
			return fmt.Errorf("Run: graph %d: %w", j.index, err)
		}
		path := graphio.Path(o.Dir, j.index, o.Codec)
		if err := graphio.WriteFile(path, g, o.BlockKey, o.Codec); err != nil {
			return fmt.Errorf("Run: graph %d: %w", j.index, err)
		}

		records[j.index-1] = Record{
			Index: j.index,
			Phase: j.phase.Name,
			Seed:  j.seed,
			File:  path,
			Nodes: g.VertexCount(),
			Edges: g.EdgeCount(),
		}
		log.Info().
			Int("index", j.index).
			Str("phase", j.phase.Name).
			Int64("seed", j.seed).
			Int("edges", g.EdgeCount()).
			Str("file", path).
			Msg("graph written")
		return nil
	}

	if o.Workers == 1 {
		for _, j := range jobs {
			if err := runOne(ctx, j); err != nil {
				return nil, err
			}
		}
	} else {
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(o.Workers)
		for _, j := range jobs {
			j := j
			eg.Go(func() error { return runOne(egCtx, j) })
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	m := &Manifest{
		RunID:      uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		MasterSeed: master,
		SeedMax:    o.SeedMax,
		Format:     o.Codec.Ext(),
		Partition:  append([]int(nil), plan.Partition...),
		Records:    records,
	}
	for _, ph := range plan.Phases {
		m.Phases = append(m.Phases, PhaseInfo{Name: ph.Name, Count: ph.Count, Probs: ph.Probs.Rows()})
	}
	if o.Manifest != "" {
		if err := WriteManifest(o.Manifest, m); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
	}

	log.Info().
		Str("run_id", m.RunID).
		Int("graphs", len(records)).
		Dur("elapsed", time.Since(started)).
		Msg("batch complete")

	return m, nil
}

// schedule pairs every index 1..Total with its phase and seed.
func schedule(plan Plan, seeds []int64) []job {
	jobs := make([]job, 0, len(seeds))
	idx := 1
	for _, ph := range plan.Phases {
		for k := 0; k < ph.Count; k++ {
			jobs = append(jobs, job{index: idx, phase: ph, seed: seeds[idx-1]})
			idx++
		}
	}
	return jobs
}
