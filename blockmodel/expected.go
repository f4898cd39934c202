// SPDX-License-Identifier: MIT
// Package: blockmodel
//
// expected.go - analytic edge statistics of an SBM.
//
// Every admissible vertex pair is an independent Bernoulli(P[a][b]) trial,
// so the edge count is a sum of binomials:
//
//	E[edges]   = Σ_{(a,b)} Trials(a,b)·P[a][b]
//	Var[edges] = Σ_{(a,b)} Trials(a,b)·P[a][b]·(1-P[a][b])
//
// where (a,b) ranges over a ≤ b for undirected models and over all ordered
// block pairs for directed ones.

package blockmodel

// Mode selects which vertex pairs are trials.
type Mode struct {
	Directed bool
	Loops    bool
}

// Trials returns the number of Bernoulli trials between blocks a and b.
//
//	undirected, a==b: C(n_a,2) (+ n_a with loops)
//	directed,   a==b: n_a·(n_a-1) (+ n_a with loops)
//	a != b:           n_a·n_b (ordered a→b when directed)
func Trials(part Partition, a, b int, mode Mode) int64 {
	na, nb := int64(part[a]), int64(part[b])
	if a != b {
		return na * nb
	}
	var t int64
	if mode.Directed {
		t = na * (na - 1)
	} else {
		t = na * (na - 1) / 2
	}
	if mode.Loops {
		t += na
	}
	return t
}

// blockPairs calls fn for every block pair that carries trials in mode.
func blockPairs(k int, mode Mode, fn func(a, b int)) {
	for a := 0; a < k; a++ {
		start := a
		if mode.Directed {
			start = 0
		}
		for b := start; b < k; b++ {
			fn(a, b)
		}
	}
}

// ExpectedEdges returns the expected number of edges. part and probs must
// already be consistent (see Validate).
// Complexity: O(B²).
func ExpectedEdges(part Partition, probs *ProbMatrix, mode Mode) float64 {
	var sum float64
	blockPairs(part.Len(), mode, func(a, b int) {
		sum += float64(Trials(part, a, b, mode)) * probs.At(a, b)
	})
	return sum
}

// EdgeVariance returns the variance of the edge count.
// Complexity: O(B²).
func EdgeVariance(part Partition, probs *ProbMatrix, mode Mode) float64 {
	var sum float64
	blockPairs(part.Len(), mode, func(a, b int) {
		p := probs.At(a, b)
		sum += float64(Trials(part, a, b, mode)) * p * (1 - p)
	})
	return sum
}
