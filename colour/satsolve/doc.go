// Package satsolve encodes a colour.Graph's k-colourability question as a
// propositional formula over satfacade, and decodes a satisfying model
// back into a per-node colouring.
//
// The variable family (c) and clause families (exactly-one per node,
// mutual exclusion per edge) follow spec.md §4.E directly, using the same
// satfacade.Context interning idiom as tunnel/satsolve.
package satsolve
