// Package analysis checks sampled graphs against the model they were drawn
// from.
//
// Inspect counts realized edges per block pair and compares each density
// with its model probability through the normal approximation to the
// binomial; Report.Check turns the comparison into a pass/fail verdict.
// Summarize reduces a series (edge counts of one phase, say) to descriptive
// statistics.
package analysis
