// SPDX-License-Identifier: MIT
// Package analysis: sentinel error set.

package analysis

import "errors"

var (
	// ErrNilGraph is returned when Inspect receives a nil graph.
	ErrNilGraph = errors.New("analysis: graph is nil")

	// ErrMissingBlock is reported when a vertex has no block attribute or an
	// index outside the partition.
	ErrMissingBlock = errors.New("analysis: vertex block missing or out of range")

	// ErrBlockSizes is reported when realized block sizes differ from the partition.
	ErrBlockSizes = errors.New("analysis: block sizes mismatch")

	// ErrSelfLoops is reported when a graph that forbids loops contains one.
	ErrSelfLoops = errors.New("analysis: unexpected self-loops")

	// ErrDensity is reported when a block-pair density is implausible under
	// the model at the requested significance level.
	ErrDensity = errors.New("analysis: block density deviates from model")

	// ErrEdgeCount is reported when the total edge count is implausible
	// under the model at the requested significance level.
	ErrEdgeCount = errors.New("analysis: edge count deviates from model")

	// ErrBadAlpha is returned for a significance level outside (0,1).
	ErrBadAlpha = errors.New("analysis: alpha must be in (0,1)")

	// ErrEmptySeries is returned by Summarize for no values.
	ErrEmptySeries = errors.New("analysis: empty series")
)
