// SPDX-License-Identifier: MIT
// Package: blockmodel
//
// partition.go - ordered block sizes.
//
// Vertices are numbered 0..Total()-1 and assigned to blocks contiguously in
// block order: block 0 owns [0, sizes[0]), block 1 the next sizes[1], etc.

package blockmodel

import (
	"fmt"
	"math"
	"sort"
)

// fractionSumEps bounds |Σk - 1| accepted by FromFractions.
const fractionSumEps = 1e-9

// Partition is the ordered sequence of block sizes.
type Partition []int

// NewPartition validates sizes and returns them as a Partition.
// Every size must be ≥ 0 and the total must be ≥ 1.
// Complexity: O(len(sizes)).
func NewPartition(sizes ...int) (Partition, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("NewPartition: no blocks: %w", ErrEmptyPartition)
	}
	total := 0
	for i, s := range sizes {
		if s < 0 {
			return nil, fmt.Errorf("NewPartition: sizes[%d]=%d: %w", i, s, ErrBadBlockSize)
		}
		total += s
	}
	if total == 0 {
		return nil, fmt.Errorf("NewPartition: zero vertices: %w", ErrEmptyPartition)
	}

	p := make(Partition, len(sizes))
	copy(p, sizes)

	return p, nil
}

// FromFractions splits n vertices into blocks of size ⌊k·n⌋ for each fraction k.
// Fractions must be non-negative and sum to 1. Because of flooring the total
// may be smaller than n.
func FromFractions(n int, fractions ...float64) (Partition, error) {
	if n < 1 {
		return nil, fmt.Errorf("FromFractions: n=%d: %w", n, ErrEmptyPartition)
	}
	sum := 0.0
	for i, k := range fractions {
		if math.IsNaN(k) || k < 0 {
			return nil, fmt.Errorf("FromFractions: k[%d]=%v: %w", i, k, ErrBadFraction)
		}
		sum += k
	}
	if math.Abs(sum-1) > fractionSumEps {
		return nil, fmt.Errorf("FromFractions: Σk=%v: %w", sum, ErrBadFraction)
	}

	sizes := make([]int, len(fractions))
	for i, k := range fractions {
		sizes[i] = int(math.Floor(k * float64(n)))
	}

	return NewPartition(sizes...)
}

// Len returns the number of blocks.
func (p Partition) Len() int { return len(p) }

// Total returns the number of vertices.
func (p Partition) Total() int {
	t := 0
	for _, s := range p {
		t += s
	}
	return t
}

// Offsets returns the first vertex index of every block.
func (p Partition) Offsets() []int {
	off := make([]int, len(p))
	acc := 0
	for i, s := range p {
		off[i] = acc
		acc += s
	}
	return off
}

// Fractions returns size/Total for every block.
func (p Partition) Fractions() []float64 {
	t := float64(p.Total())
	out := make([]float64, len(p))
	for i, s := range p {
		out[i] = float64(s) / t
	}
	return out
}

// BlockOf returns the block that owns vertex v.
// Complexity: O(log B).
func (p Partition) BlockOf(v int) (int, error) {
	if v < 0 || v >= p.Total() {
		return 0, fmt.Errorf("BlockOf(%d): %w", v, ErrVertexOutOfRange)
	}
	off := p.Offsets()
	// last block starting at or before v; empty blocks share their
	// successor's offset so they are never selected
	return sort.Search(len(off), func(i int) bool { return off[i] > v }) - 1, nil
}

// Assignment returns the block of every vertex, indexed by vertex.
// Complexity: O(Total).
func (p Partition) Assignment() []int {
	out := make([]int, 0, p.Total())
	for b, s := range p {
		for i := 0; i < s; i++ {
			out = append(out, b)
		}
	}
	return out
}
