// Package tunnelsat decides reachability in a tunnel network: a directed
// graph whose nodes carry a subset of ten IPv4/IPv6 stack operations.
// Given an initial node, a final node, and a bound L, it answers whether a
// simple path of length at most L exists along which the operations carry
// a stack from [4] back to exactly [4], and produces a witness when one
// does.
//
// The reachability question is decided two ways — an iterative-deepening
// brute-force search, and a reduction to propositional satisfiability
// solved through a pluggable SAT façade — and a structurally analogous
// graph-colouring problem rides the same façade and search idioms.
//
// Everything lives in subpackages:
//
//	action/           — the ten-variant stack-action alphabet and its apply semantics
//	graph/            — immutable, integer-indexed directed graph + gonum adapter
//	graph/dotgraph/   — DOT-like textual graph loader (collaborator)
//	tunnel/           — the Tunnel Network model (graph + action masks + initial/final)
//	tunnel/bruteforce/ — depth-first brute-force solver for Tunnel
//	tunnel/satsolve/  — SAT encoder + decoder for Tunnel
//	colour/           — the graph-colouring twin's mutable colouring model
//	colour/bruteforce/ — depth-first brute-force solver for Colouring
//	colour/satsolve/  — SAT encoder + decoder for Colouring
//	satfacade/        — the boolean-formula façade (Context, Formula, Solver)
//	satfacade/dpll/   — a reference Solver backend (Tseitin + DPLL)
//	cmd/tunnelsat/    — CLI front-end wiring the above together
//
//	go get github.com/arcrouting/tunnelsat
package tunnelsat
