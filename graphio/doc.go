// Package graphio serializes sampled graphs to files and back.
//
// A graph is exported to a node-link Document:
//
//	{"directed":false,"multigraph":false,
//	 "graph":{"name":"stochastic_block_model","partition":[["0","1"],["2"]]},
//	 "nodes":[{"id":"0","block":0},...],
//	 "links":[{"source":"0","target":"1"},...]}
//
// Two codecs carry the document: JSON (github.com/goccy/go-json, ext
// "json") and gob (ext "gob"). Files are named graph_<i>.<ext>.
//
// Export order is deterministic: nodes in core insertion order, links in
// edge insertion order, partition blocks by ascending block index.
package graphio
