package dpll

import "github.com/arcrouting/tunnelsat/satfacade"

// literal is a 1-based variable index, negative when the variable is
// negated. Zero is never a valid literal. This mirrors the signed-ID
// convention the gonum 2-SAT example uses for its implication graph nodes.
type literal int32

func (l literal) variable() int { return int(l) - 1 }
func (l literal) negated() bool { return l < 0 }
func (l literal) neg() literal  { return -l }

// clause is a disjunction of literals.
type clause []literal

// cnf is the result of Tseitin-transforming a satfacade.Formula: a set of
// clauses over 1..numVars, where variables 0..origVars-1 (0-based) are the
// Context's own variables and the remainder are auxiliary Tseitin
// variables introduced for subformulas.
type cnf struct {
	clauses  []clause
	numVars  int
	origVars int
}

// tseitin converts f into CNF. Each compound subformula g is given a fresh
// auxiliary variable t_g constrained to be equivalent to g (t_g ↔ g); the
// top-level formula's auxiliary variable is then asserted true as a unit
// clause. This is the standard linear-size CNF transform, used here
// instead of naive distribution so that a densely-nested encoder output
// (the tunnel/colouring encoders build deeply conjoined ANDs of ORs) never
// blows up exponentially.
func tseitin(ctx *satfacade.Context, f satfacade.Formula) cnf {
	t := &tseitinizer{origVars: ctx.NumVars()}
	t.numVars = t.origVars
	root := t.visit(f)
	t.clauses = append(t.clauses, clause{root})
	return cnf{clauses: t.clauses, numVars: t.numVars, origVars: t.origVars}
}

type tseitinizer struct {
	clauses  []clause
	numVars  int
	origVars int
	trueVar  literal
}

func (t *tseitinizer) freshVar() int {
	v := t.numVars
	t.numVars++
	return v
}

// visit returns the literal representing f (introducing auxiliary
// variables and their defining clauses as needed) without re-walking
// shared structure more than once per occurrence — formulas built by And/Or
// varargs are trees, not DAGs, so no memoization is required for
// correctness, only for size, which the encoders keep small per clause
// family.
func (t *tseitinizer) visit(f satfacade.Formula) literal {
	switch f.Kind() {
	case satfacade.KindConst:
		if f.BoolValue() {
			return t.trueLiteral()
		}
		return t.trueLiteral().neg()

	case satfacade.KindVar:
		return literal(f.VarIndex() + 1)

	case satfacade.KindNot:
		return t.visit(f.Args()[0]).neg()

	case satfacade.KindAnd:
		return t.visitAnd(f.Args())

	case satfacade.KindOr:
		return t.visitOr(f.Args())

	default:
		panic("dpll: unknown formula kind")
	}
}

// trueLiteral returns a literal that is always true, memoizing the
// constant-true helper variable across a single tseitinizer run.
func (t *tseitinizer) trueLiteral() literal {
	if t.trueVar == 0 {
		v := t.freshVar()
		t.trueVar = literal(v + 1)
		t.clauses = append(t.clauses, clause{t.trueVar})
	}
	return t.trueVar
}

func (t *tseitinizer) visitAnd(args []satfacade.Formula) literal {
	if len(args) == 0 {
		return t.trueLiteral()
	}
	lits := make([]literal, len(args))
	for i, a := range args {
		lits[i] = t.visit(a)
	}
	if len(lits) == 1 {
		return lits[0]
	}
	aux := literal(t.freshVar() + 1)
	// aux -> each lit
	for _, l := range lits {
		t.clauses = append(t.clauses, clause{aux.neg(), l})
	}
	// (all lits) -> aux
	cl := make(clause, 0, len(lits)+1)
	for _, l := range lits {
		cl = append(cl, l.neg())
	}
	cl = append(cl, aux)
	t.clauses = append(t.clauses, cl)
	return aux
}

func (t *tseitinizer) visitOr(args []satfacade.Formula) literal {
	if len(args) == 0 {
		return t.trueLiteral().neg()
	}
	lits := make([]literal, len(args))
	for i, a := range args {
		lits[i] = t.visit(a)
	}
	if len(lits) == 1 {
		return lits[0]
	}
	aux := literal(t.freshVar() + 1)
	// each lit -> aux
	for _, l := range lits {
		t.clauses = append(t.clauses, clause{l.neg(), aux})
	}
	// aux -> (some lit)
	cl := make(clause, 0, len(lits)+1)
	cl = append(cl, aux.neg())
	cl = append(cl, lits...)
	t.clauses = append(t.clauses, cl)
	return aux
}
