// Package bruteforce implements the iterative-deepening DFS solver of
// spec.md §4.C: for L = 1, 2, ... up to a caller-supplied bound, it searches
// for a simple path from a tunnel.Network's initial node to its final node
// whose stack-action sequence starts and ends at stack [4].
//
// The walker follows the same shape as the teacher's graph/algorithms DFS
// (a small struct holding the search state, a recursive traverse method,
// optional hooks, context cancellation), generalized from unconditional
// vertex visitation to the stack-action-gated, backtracking search the
// tunnel-network domain requires.
package bruteforce
