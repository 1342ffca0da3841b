// Package tunnel implements the Tunnel Network core: an immutable view over
// a graph.Graph that additionally carries, per node, the subset of stack
// actions (package action) it may perform, plus designated initial and
// final nodes.
//
// A Network is derived once from a graph.Graph via New, and is read-only
// from then on; the brute-force (tunnel/bruteforce) and SAT-based
// (tunnel/satsolve) solvers both consume it without mutating it, mirroring
// the teacher's core.NewGraph-then-immutable-view split.
package tunnel
