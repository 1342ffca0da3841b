package satfacade

// Context mints named boolean variables. Two calls to Var with the same
// name return formulas referring to the same underlying variable, mirroring
// Z3Tools' mk_bool_var contract ("each call with same name will produce the
// same formula").
type Context struct {
	names []string
	index map[string]int
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{index: make(map[string]int)}
}

// Var returns the formula consisting of the single named variable,
// allocating a fresh variable on first use and reusing it thereafter.
func (c *Context) Var(name string) Formula {
	if i, ok := c.index[name]; ok {
		return Formula{kind: fVar, variable: i}
	}
	i := len(c.names)
	c.names = append(c.names, name)
	c.index[name] = i
	return Formula{kind: fVar, variable: i}
}

// NumVars returns the number of distinct variables minted so far.
func (c *Context) NumVars() int { return len(c.names) }

// VarName returns the name a variable index was minted with.
func (c *Context) VarName(i int) string { return c.names[i] }

// Kind distinguishes the nodes of a Formula's AST. Exported so that a
// Solver implementation living in another package (satfacade/dpll, or a
// future backend) can decompose a Formula without this package knowing
// anything about how any particular solver represents clauses.
type Kind uint8

const (
	KindConst Kind = iota
	KindVar
	KindNot
	KindAnd
	KindOr
)

const (
	fConst = KindConst
	fVar   = KindVar
	fNot   = KindNot
	fAnd   = KindAnd
	fOr    = KindOr
)

// Formula is an immutable propositional-logic expression tree over a
// Context's variables. Formulas are built with Context.Var and the package
// connectives And/Or/Not/Implies/Iff. Solve backends introspect a Formula
// via Kind, Args, VarIndex and BoolValue rather than reaching into its
// fields, which stay unexported.
type Formula struct {
	kind     Kind
	variable int
	value    bool // valid when kind == KindConst
	args     []Formula
}

// Kind reports which AST node f is.
func (f Formula) Kind() Kind { return f.kind }

// Args returns f's operands. Valid (and non-empty, for And/Or with a
// non-trivial arity) only when Kind() is KindAnd, KindOr, or KindNot (the
// latter always has exactly one argument).
func (f Formula) Args() []Formula { return f.args }

// VarIndex returns f's 0-based variable index. Valid only when
// Kind() == KindVar.
func (f Formula) VarIndex() int { return f.variable }

// BoolValue returns f's constant value. Valid only when Kind() == KindConst.
func (f Formula) BoolValue() bool { return f.value }

// True is the formula that is always satisfied.
var True = Formula{kind: fConst, value: true}

// False is the formula that is never satisfied.
var False = Formula{kind: fConst, value: false}

// Not returns ¬f.
func Not(f Formula) Formula {
	if f.kind == fConst {
		return boolConst(!f.value)
	}
	if f.kind == fNot {
		return f.args[0]
	}
	return Formula{kind: fNot, args: []Formula{f}}
}

// And returns the conjunction of fs. And() (zero arguments) is True.
func And(fs ...Formula) Formula {
	return Formula{kind: fAnd, args: append([]Formula(nil), fs...)}
}

// Or returns the disjunction of fs. Or() (zero arguments) is False.
func Or(fs ...Formula) Formula {
	return Formula{kind: fOr, args: append([]Formula(nil), fs...)}
}

// Implies returns a → b, i.e. ¬a ∨ b.
func Implies(a, b Formula) Formula {
	return Or(Not(a), b)
}

// Iff returns a ↔ b, i.e. (a → b) ∧ (b → a).
func Iff(a, b Formula) Formula {
	return And(Implies(a, b), Implies(b, a))
}

// AtMostOne returns a formula stating at most one of fs holds, via the
// standard pairwise-exclusion encoding (Z3Tools' at_most_formula).
func AtMostOne(fs ...Formula) Formula {
	var clauses []Formula
	for i := 0; i < len(fs); i++ {
		for j := i + 1; j < len(fs); j++ {
			clauses = append(clauses, Or(Not(fs[i]), Not(fs[j])))
		}
	}
	return And(clauses...)
}

// ExactlyOne returns a formula stating exactly one of fs holds (Z3Tools'
// uniqueFormula): at least one, and at most one.
func ExactlyOne(fs ...Formula) Formula {
	return And(Or(fs...), AtMostOne(fs...))
}

func boolConst(b bool) Formula { return Formula{kind: fConst, value: b} }
