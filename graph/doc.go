// Package graph defines the read-only directed graph view the core
// algorithms of this module consume: a fixed set of integer-indexed nodes
// with string names, string-valued node attributes, and a dense boolean
// adjacency matrix.
//
// A Graph is built once, through Builder, and is never mutated afterwards
// — callers that need a modified graph build a new one. This mirrors the
// immutable-view split the teacher package uses (core.NewGraph plus
// core.UnweightedView/InducedSubgraph), adapted here to integer node IDs
// because the tunnel-network and colouring reductions both address nodes
// positionally (node 0..N-1) rather than by string key.
package graph
