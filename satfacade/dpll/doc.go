// Package dpll implements satfacade.Solver with a Tseitin-transform-to-CNF
// front end and a classic DPLL (Davis-Putnam-Logemann-Loveland) search:
// unit propagation, pure-literal elimination, and chronological
// backtracking over the remaining variables.
//
// No third-party SAT/SMT library appears anywhere in the example corpus
// this module was built from (see DESIGN.md), so this is the one
// stdlib-only component of the module: the reference implementation behind
// the satfacade.Solver seam, not a reimplementation to avoid a dependency
// that was available.
package dpll
