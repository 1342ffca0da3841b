// Package satsolve encodes a tunnel.Network's bounded reachability question
// as a propositional formula over satfacade, and decodes a satisfying
// model back into a tunnel.Step path.
//
// The variable families (x, y4, y6) and clause families (1-8) follow
// spec.md §4.D directly; naming is globalised through a satfacade.Context
// the way the original project's Z3Tools-based encoder names its Z3_ast
// variables by formatted string, so repeated requests for the same
// (p, h, u) triple always yield the same underlying variable.
package satsolve
