// SPDX-License-Identifier: MIT
// Package: analysis
//
// check.go - pass/fail verdict over a Report.

package analysis

import (
	"errors"
	"fmt"
	"math"
)

// ValidAlpha reports ErrBadAlpha unless alpha lies in (0,1).
func ValidAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		return fmt.Errorf("alpha %v: %w", alpha, ErrBadAlpha)
	}
	return nil
}

// Tests is the number of hypothesis tests Check runs against one report:
// one per block pair plus the total edge count.
func (r *Report) Tests() int { return len(r.Pairs) + 1 }

// Check returns nil when the report is consistent with its model. Each of
// the r.Tests() statistical tests is run at level alpha; callers checking
// many reports divide their family-wise level accordingly (see
// batch.Verify). Otherwise Check joins one wrapped sentinel per problem:
// ErrMissingBlock, ErrBlockSizes, ErrSelfLoops, ErrDensity, ErrEdgeCount.
func (r *Report) Check(alpha float64) error {
	if err := ValidAlpha(alpha); err != nil {
		return fmt.Errorf("Check: %w", err)
	}

	var errs []error
	if len(r.Unassigned) > 0 {
		errs = append(errs, fmt.Errorf("%d vertices, first %q: %w", len(r.Unassigned), r.Unassigned[0], ErrMissingBlock))
	}
	for i, want := range r.WantSizes {
		if got := r.BlockSizes[i]; got != want {
			errs = append(errs, fmt.Errorf("block %d has %d vertices, want %d: %w", i, got, want, ErrBlockSizes))
		}
	}
	if !r.LoopsOK && r.SelfLoops > 0 {
		errs = append(errs, fmt.Errorf("%d self-loops: %w", r.SelfLoops, ErrSelfLoops))
	}
	for _, s := range r.Pairs {
		if s.PValue < alpha {
			errs = append(errs, fmt.Errorf("pair (%d,%d): density %.4f vs p=%.4f, z=%.2f, p-value %.3g: %w",
				s.A, s.B, s.Density, s.Prob, s.Z, s.PValue, ErrDensity))
		}
	}

	if p := twoSided(r.EdgeZ); p < alpha {
		errs = append(errs, fmt.Errorf("%d edges vs expected %.1f, z=%.2f, p-value %.3g: %w",
			r.Edges, r.ExpectedEdges, r.EdgeZ, p, ErrEdgeCount))
	}

	return errors.Join(errs...)
}
