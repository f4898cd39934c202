// SPDX-License-Identifier: MIT
// Package blockmodel: sentinel error set.
//
// All validation functions return these sentinels, optionally wrapped with
// context via fmt.Errorf("...: %w", ErrX). Callers match with errors.Is.
//
// ERROR PRIORITY (enforced in Validate):
// partition -> matrix shape -> NaN/Inf -> probability range -> dimension
// mismatch -> symmetry.

package blockmodel

import "errors"

var (
	// ErrEmptyPartition is returned when a partition has no blocks or no vertices.
	ErrEmptyPartition = errors.New("blockmodel: empty partition")

	// ErrBadBlockSize is returned when a block size is negative.
	ErrBadBlockSize = errors.New("blockmodel: negative block size")

	// ErrBadFraction is returned when block fractions are negative, NaN or do
	// not sum to 1 within tolerance.
	ErrBadFraction = errors.New("blockmodel: invalid block fractions")

	// ErrNonSquare is returned when the probability matrix is empty or ragged.
	ErrNonSquare = errors.New("blockmodel: probability matrix is not square")

	// ErrNaNInf is returned when a probability is NaN or ±Inf.
	ErrNaNInf = errors.New("blockmodel: NaN or Inf probability")

	// ErrInvalidProbability is returned when a probability lies outside [0,1].
	ErrInvalidProbability = errors.New("blockmodel: probability out of range")

	// ErrDimensionMismatch is returned when the number of blocks differs from
	// the matrix dimension.
	ErrDimensionMismatch = errors.New("blockmodel: partition/matrix dimension mismatch")

	// ErrAsymmetric is returned when an undirected model gets a non-symmetric matrix.
	ErrAsymmetric = errors.New("blockmodel: probability matrix is not symmetric")

	// ErrVertexOutOfRange is returned by BlockOf for indexes outside [0,Total).
	ErrVertexOutOfRange = errors.New("blockmodel: vertex index out of range")

	// ErrUnsupportedPerturbation is returned when Perturb is asked for a
	// matrix that is not 2×2 or for non-positive fractions.
	ErrUnsupportedPerturbation = errors.New("blockmodel: unsupported perturbation")
)
