// SPDX-License-Identifier: MIT
// Package: blockmodel
//
// perturb.go - density-preserving tau perturbation of a two-block matrix.
//
// With block fractions k1, k2 (k1+k2=1) and base [[p1,q],[q,p2]] the
// perturbed matrix is
//
//	[[p1 + tau/k1,  q - tau/k2        ],
//	 [q - tau/k2,   p2 + tau·k1/k2²   ]]
//
// The expected number of undirected edges changes by
//
//	tau/k1·C(n1,2) - tau/k2·n1·n2 + tau·k1/k2²·C(n2,2)
//	  = tau·n²·(k1/2 - k1 + k1/2) + O(n) = O(n)
//
// so the edge count is preserved to leading order (the O(n) remainder is
// -tau/2·(n1/k1 + k1·n2/k2²)). The asymmetric denominators make the
// n² terms cancel.

package blockmodel

import (
	"fmt"
	"math"
)

// Perturb returns the tau perturbation of a 2×2 base matrix for fractions k1, k2.
//
// Errors:
//   - ErrUnsupportedPerturbation: base is not 2×2, or k1/k2 are not positive.
//   - ErrInvalidProbability / ErrNaNInf: a perturbed entry leaves [0,1].
func Perturb(base *ProbMatrix, tau, k1, k2 float64) (*ProbMatrix, error) {
	if base == nil || base.Dim() != 2 {
		return nil, fmt.Errorf("Perturb: need a 2x2 matrix: %w", ErrUnsupportedPerturbation)
	}
	if !(k1 > 0) || !(k2 > 0) || math.IsInf(k1, 0) || math.IsInf(k2, 0) {
		return nil, fmt.Errorf("Perturb: k1=%v k2=%v: %w", k1, k2, ErrUnsupportedPerturbation)
	}

	p1, q, p2 := base.At(0, 0), base.At(0, 1), base.At(1, 1)
	qt := base.At(1, 0)
	rows := [][]float64{
		{p1 + tau/k1, q - tau/k2},
		{qt - tau/k2, p2 + tau*k1/(k2*k2)},
	}

	pm, err := NewProbMatrix(rows)
	if err != nil {
		return nil, fmt.Errorf("Perturb(tau=%v): %w", tau, err)
	}
	return pm, nil
}
