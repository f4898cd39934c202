// SPDX-License-Identifier: MIT
// Package graphio: sentinel error set.

package graphio

import "errors"

var (
	// ErrNilGraph is returned when a nil graph or document is exported.
	ErrNilGraph = errors.New("graphio: graph is nil")

	// ErrMissingBlock is returned when a vertex carries no block attribute.
	ErrMissingBlock = errors.New("graphio: vertex has no block")

	// ErrUnknownFormat is returned for an unsupported codec name.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrBadDocument is returned when a decoded document is inconsistent
	// (duplicate node, link to an unknown node).
	ErrBadDocument = errors.New("graphio: malformed document")
)
