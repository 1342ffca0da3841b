package satfacade

import "github.com/sirupsen/logrus"

// Result is the three-valued outcome of a satisfiability query, matching
// Z3Tools' Z3_lbool (Z3_L_FALSE / Z3_L_TRUE / Z3_L_UNDEF).
type Result uint8

const (
	// Unsatisfiable means no assignment satisfies the formula.
	Unsatisfiable Result = iota
	// Satisfiable means at least one assignment satisfies the formula; a
	// Model is available.
	Satisfiable
	// Unknown means the solver could not decide. The reference DPLL
	// solver in satfacade/dpll never returns this, but the facade leaves
	// room for a backend (e.g. a resource-bounded SMT solver) that can.
	Unknown
)

// String renders r for logs and test output.
func (r Result) String() string {
	switch r {
	case Unsatisfiable:
		return "UNSAT"
	case Satisfiable:
		return "SAT"
	default:
		return "UNKNOWN"
	}
}

// Model is a satisfying assignment returned alongside a Satisfiable Result.
type Model struct {
	ctx    *Context
	values []bool
	log    *logrus.Entry
}

// NewModel builds a Model over ctx from a per-variable-index assignment.
// Solver implementations use this to package their result.
func NewModel(ctx *Context, values []bool, log *logrus.Entry) Model {
	return Model{ctx: ctx, values: values, log: log}
}

// Value returns f's truth value under the model. f must be a single
// variable (as returned by Context.Var) or a constant; compound formulas
// are not evaluated here, matching Z3Tools' value_of_var_in_model contract
// ("useful if variable is a formula containing a single variable").
//
// A variable index beyond the model's recorded assignment (the solver
// never constrained it, e.g. it was introduced but eliminated by
// simplification) is treated as false, and a warning is logged — this is
// the "undefined variable in model treated as false" rule of spec.md §4.D.
func (m Model) Value(f Formula) bool {
	switch f.kind {
	case fConst:
		return f.value
	case fNot:
		return !m.Value(f.args[0])
	case fVar:
		if f.variable < len(m.values) {
			return m.values[f.variable]
		}
		if m.log != nil {
			m.log.WithField("variable", m.ctx.VarName(f.variable)).
				Warn("satfacade: variable undefined in model, defaulting to false")
		}
		return false
	default:
		panic("satfacade: Model.Value called on a compound formula")
	}
}

// Solver decides satisfiability of Formulas built over a Context. It is
// the seam a concrete backend (satfacade/dpll, or any future SAT/SMT
// library) fills.
type Solver interface {
	// Solve decides f's satisfiability and, if Satisfiable, returns a
	// model. The Model is the zero Model when Result != Satisfiable.
	Solve(ctx *Context, f Formula) (Result, Model)
}
