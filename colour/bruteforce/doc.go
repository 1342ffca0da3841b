// Package bruteforce implements the colouring DFS of spec.md §4.E: assign
// each node 0..N-1 one of 0..k-1 colours, pruning as soon as a
// lower-numbered neighbour already holds the candidate colour. On failure,
// every colour is reset to colour.Unset.
//
// The node-0 search additionally breaks the colour-permutation symmetry —
// grounded on ColouringResolution.c's recursive_bf, which only ever tries
// colour 0 for node 0 and fails outright if that does not extend to a full
// colouring, since any other choice for node 0 is isomorphic to it under
// colour relabelling.
package bruteforce
