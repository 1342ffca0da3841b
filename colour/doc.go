// Package colour implements the "colouring twin" of the tunnel-network
// problem: a graph.Graph enriched with a per-node integer colour, defaulted
// to -1 (unset). It exists because the tunnel-network SAT reduction and the
// graph-colouring SAT reduction share the same shape (an exactly-one
// variable family per node, an incompatibility clause per edge), and the
// two brute-force searches share the backtracking-DFS-with-pruning idiom —
// structurally analogous problems the same facade and patterns serve.
package colour
