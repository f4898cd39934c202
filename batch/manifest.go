// SPDX-License-Identifier: MIT
// Package: batch
//
// manifest.go - run manifest.

package batch

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
)

// Record describes one written graph.
type Record struct {
	Index int    `json:"index"`
	Phase string `json:"phase"`
	Seed  int64  `json:"seed"`
	File  string `json:"file"`
	Nodes int    `json:"nodes"`
	Edges int    `json:"edges"`
}

// PhaseInfo is the manifest view of a Phase.
type PhaseInfo struct {
	Name  string      `json:"name"`
	Count int         `json:"count"`
	Probs [][]float64 `json:"probs"`
}

// Manifest is the summary of a run.
type Manifest struct {
	RunID      string      `json:"run_id"`
	CreatedAt  time.Time   `json:"created_at"`
	MasterSeed int64       `json:"master_seed"`
	SeedMax    int         `json:"seed_max"`
	Format     string      `json:"format"`
	Partition  []int       `json:"partition"`
	Phases     []PhaseInfo `json:"phases"`
	Records    []Record    `json:"records"`
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("WriteManifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("WriteManifest: %w", err)
	}
	return nil
}

// ReadManifest reads a manifest written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadManifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("ReadManifest(%s): %w", path, err)
	}
	return &m, nil
}
