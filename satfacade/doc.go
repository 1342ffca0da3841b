// Package satfacade defines the solver-agnostic boolean-formula facade
// spec.md §4.D requires: a Context that mints named boolean variables, the
// five connectives (And, Or, Not, Implies, Iff) for composing them into
// Formulas, and a Solve that returns SAT/UNSAT/Unknown together with a
// queryable Model.
//
// It is modelled after the original project's Z3Tools.h — "functions to
// easily and transparently manipulate an SMT solver as a SAT solver
// without delving too much in the documentation" — but the facade itself
// names no concrete backend; satfacade/dpll supplies the one solver this
// module ships, and any other backend (e.g. a real SAT/SMT library) would
// implement the same Solver interface.
package satfacade
