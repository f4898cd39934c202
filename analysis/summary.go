// SPDX-License-Identifier: MIT
// Package: analysis
//
// summary.go - descriptive statistics over a series.

package analysis

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes a series of observations.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
}

// Summarize computes count, mean, sample standard deviation (0 for one
// value), min, max and median.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("Summarize: %w", ErrEmptySeries)
	}
	data := stats.Float64Data(values)

	s := Summary{Count: len(values)}
	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, fmt.Errorf("Summarize: mean: %w", err)
	}
	if len(values) > 1 {
		if s.StdDev, err = stats.StandardDeviationSample(data); err != nil {
			return Summary{}, fmt.Errorf("Summarize: stddev: %w", err)
		}
	}
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, fmt.Errorf("Summarize: min: %w", err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, fmt.Errorf("Summarize: max: %w", err)
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, fmt.Errorf("Summarize: median: %w", err)
	}

	return s, nil
}

// Ints converts integer observations for Summarize.
func Ints(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
