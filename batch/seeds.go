// SPDX-License-Identifier: MIT
// Package: batch
//
// seeds.go - per-graph seed schedule.

package batch

import (
	"time"

	"github.com/baranwa2/RandomWalkGCN/builder"
)

// DefaultSeedMax is the exclusive upper bound of per-graph seeds.
const DefaultSeedMax = 20000

// Seeds draws count seeds uniformly from [0, max) with a source seeded by
// master, in index order. Seeds[i] belongs to graph i+1.
func Seeds(master int64, count, max int) []int64 {
	rng := builder.NewRand(master)
	out := make([]int64, count)
	for i := range out {
		out[i] = int64(rng.Intn(max))
	}
	return out
}

// clockSeed derives a master seed when none is configured.
func clockSeed() int64 {
	return time.Now().UnixNano()
}
