// Package batch drives dataset generation: a Plan of phases, each phase a
// probability matrix sampled Count times over a shared block partition.
//
// Run numbers graphs 1..Total across phases, pre-draws one seed per graph
// from a master source, samples each graph with its own *rand.Rand, and
// writes graph_<i>.<ext> to the output directory. With one worker (the
// default) file i is closed before graph i+1 is sampled; more workers run
// through an errgroup and produce identical files.
package batch
