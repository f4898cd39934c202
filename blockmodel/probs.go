// SPDX-License-Identifier: MIT
// Package: blockmodel
//
// probs.go - the block-to-block edge probability matrix.
//
// Contract:
//   - Square, non-empty, every entry finite and in [0,1].
//   - Immutable after construction; At/Rows never expose the backing store.
//   - Symmetry is checked by Validate only for undirected models.

package blockmodel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// symmetryEps is the absolute tolerance for P[i][j] == P[j][i].
const symmetryEps = 1e-12

// ProbMatrix is a validated square matrix of edge probabilities.
type ProbMatrix struct {
	m *mat.Dense
}

// NewProbMatrix validates rows and copies them into a ProbMatrix.
//
// Errors: ErrNonSquare, ErrNaNInf, ErrInvalidProbability (first offending
// entry in row-major order).
// Complexity: O(B²).
func NewProbMatrix(rows [][]float64) (*ProbMatrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("NewProbMatrix: no rows: %w", ErrNonSquare)
	}
	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewProbMatrix: row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		for j, p := range row {
			if math.IsNaN(p) || math.IsInf(p, 0) {
				return nil, fmt.Errorf("NewProbMatrix: P[%d][%d]=%v: %w", i, j, p, ErrNaNInf)
			}
			if p < 0 || p > 1 {
				return nil, fmt.Errorf("NewProbMatrix: P[%d][%d]=%v not in [0,1]: %w", i, j, p, ErrInvalidProbability)
			}
		}
		data = append(data, row...)
	}

	return &ProbMatrix{m: mat.NewDense(n, n, data)}, nil
}

// MustProbMatrix is NewProbMatrix for literals in tests and examples; it
// panics on invalid input.
func MustProbMatrix(rows [][]float64) *ProbMatrix {
	p, err := NewProbMatrix(rows)
	if err != nil {
		panic(err)
	}
	return p
}

// TwoBlock returns [[p1,q],[q,p2]].
func TwoBlock(p1, p2, q float64) (*ProbMatrix, error) {
	return NewProbMatrix([][]float64{{p1, q}, {q, p2}})
}

// Dim returns the number of blocks the matrix describes.
func (p *ProbMatrix) Dim() int {
	r, _ := p.m.Dims()
	return r
}

// At returns P[i][j]. It panics on out-of-range indexes, like mat.Dense.
func (p *ProbMatrix) At(i, j int) float64 { return p.m.At(i, j) }

// Rows returns a fresh [][]float64 copy of the matrix.
func (p *ProbMatrix) Rows() [][]float64 {
	n := p.Dim()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = mat.Row(nil, i, p.m)
	}
	return out
}

// IsSymmetric reports whether P equals its transpose within symmetryEps.
func (p *ProbMatrix) IsSymmetric() bool {
	return mat.EqualApprox(p.m, p.m.T(), symmetryEps)
}

// Equal reports whether both matrices have the same shape and entries
// within tol.
func (p *ProbMatrix) Equal(o *ProbMatrix, tol float64) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.Dim() != o.Dim() {
		return false
	}
	return mat.EqualApprox(p.m, o.m, tol)
}

// String renders the matrix in gonum's formatted layout.
func (p *ProbMatrix) String() string {
	return fmt.Sprintf("%.6g", mat.Formatted(p.m, mat.Squeeze()))
}

// Validate checks that part and probs describe one model: same number of
// blocks, and a symmetric matrix unless directed is true.
//
// Errors: ErrEmptyPartition, ErrBadBlockSize, ErrNonSquare,
// ErrDimensionMismatch, ErrAsymmetric.
func Validate(part Partition, probs *ProbMatrix, directed bool) error {
	if _, err := NewPartition(part...); err != nil {
		return err
	}
	if probs == nil {
		return fmt.Errorf("Validate: nil matrix: %w", ErrNonSquare)
	}
	if part.Len() != probs.Dim() {
		return fmt.Errorf("Validate: %d blocks vs %dx%d matrix: %w",
			part.Len(), probs.Dim(), probs.Dim(), ErrDimensionMismatch)
	}
	if !directed && !probs.IsSymmetric() {
		return fmt.Errorf("Validate: undirected model: %w", ErrAsymmetric)
	}
	return nil
}
