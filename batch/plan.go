// SPDX-License-Identifier: MIT
// Package: batch
//
// plan.go - phases and the two-regime dataset plan.

package batch

import (
	"errors"
	"fmt"

	"github.com/baranwa2/RandomWalkGCN/blockmodel"
)

// Phase is one regime of the dataset: Count graphs drawn from Probs.
type Phase struct {
	Name  string
	Count int
	Probs *blockmodel.ProbMatrix
}

// Plan is an ordered list of phases over one partition.
type Plan struct {
	Partition blockmodel.Partition
	Phases    []Phase
}

// Phase names of the two-regime plan.
const (
	PhaseBase      = "base"
	PhasePerturbed = "perturbed"
)

// ErrInvalidPlan is returned for plans that cannot be run.
var ErrInvalidPlan = errors.New("batch: invalid plan")

// Total returns the number of graphs the plan produces.
func (p Plan) Total() int {
	t := 0
	for _, ph := range p.Phases {
		t += ph.Count
	}
	return t
}

// PhaseOf returns the phase that produces graph index (1-based).
func (p Plan) PhaseOf(index int) (Phase, bool) {
	if index < 1 {
		return Phase{}, false
	}
	for _, ph := range p.Phases {
		if index <= ph.Count {
			return ph, true
		}
		index -= ph.Count
	}
	return Phase{}, false
}

// Validate checks the partition against every phase matrix.
func (p Plan) Validate() error {
	if len(p.Phases) == 0 {
		return fmt.Errorf("Plan.Validate: no phases: %w", ErrInvalidPlan)
	}
	for i, ph := range p.Phases {
		if ph.Count < 0 {
			return fmt.Errorf("Plan.Validate: phase %d (%s) count %d: %w", i, ph.Name, ph.Count, ErrInvalidPlan)
		}
		if err := blockmodel.Validate(p.Partition, ph.Probs, false); err != nil {
			return fmt.Errorf("Plan.Validate: phase %d (%s): %w", i, ph.Name, err)
		}
	}
	return nil
}

// TwoRegime parameterizes the base/perturbed dataset: two blocks of
// ⌊k1·n⌋ and ⌊k2·n⌋ vertices, BaseCount graphs from [[p1,q],[q,p2]] then
// PerturbedCount graphs from its tau-perturbation.
type TwoRegime struct {
	P1, P2, Q float64
	Tau       float64
	K1, K2    float64
	N         int

	BaseCount      int
	PerturbedCount int
}

// DefaultTwoRegime returns the reference dataset parameters.
func DefaultTwoRegime() TwoRegime {
	return TwoRegime{
		P1: 0.6, P2: 0.3, Q: 0.1,
		Tau: 0.05,
		K1:  0.4, K2: 0.6,
		N:              1000,
		BaseCount:      100,
		PerturbedCount: 100,
	}
}

// Plan builds the two-phase plan.
func (t TwoRegime) Plan() (Plan, error) {
	part, err := blockmodel.FromFractions(t.N, t.K1, t.K2)
	if err != nil {
		return Plan{}, fmt.Errorf("TwoRegime.Plan: %w", err)
	}
	base, err := blockmodel.TwoBlock(t.P1, t.P2, t.Q)
	if err != nil {
		return Plan{}, fmt.Errorf("TwoRegime.Plan: base: %w", err)
	}
	perturbed, err := blockmodel.Perturb(base, t.Tau, t.K1, t.K2)
	if err != nil {
		return Plan{}, fmt.Errorf("TwoRegime.Plan: perturbed: %w", err)
	}

	return Plan{
		Partition: part,
		Phases: []Phase{
			{Name: PhaseBase, Count: t.BaseCount, Probs: base},
			{Name: PhasePerturbed, Count: t.PerturbedCount, Probs: perturbed},
		},
	}, nil
}
