package dpll

// assignment holds a 3-valued truth value per variable: 0 = unassigned,
// 1 = true, -1 = false. Indexed by 0-based variable index.
type assignment []int8

func (a assignment) value(l literal) (bool, bool) {
	v := a[l.variable()]
	if v == 0 {
		return false, false
	}
	val := v == 1
	if l.negated() {
		val = !val
	}
	return val, true
}

// solve runs DPLL over f's clauses and returns a satisfying assignment, or
// ok == false if none exists.
func solve(f cnf) (assignment, bool) {
	a := make(assignment, f.numVars)
	clauses := make([]clause, len(f.clauses))
	copy(clauses, f.clauses)
	return dpll(clauses, a)
}

// dpll performs unit propagation and pure-literal elimination, then
// branches on the first unassigned variable, trying true before false.
func dpll(clauses []clause, a assignment) (assignment, bool) {
	clauses, a, ok := unitPropagate(clauses, a)
	if !ok {
		return nil, false
	}
	clauses, a = eliminatePureLiterals(clauses, a)

	sat, conflict := status(clauses, a)
	if conflict {
		return nil, false
	}
	if sat {
		return a, true
	}

	v := firstUnassigned(a)

	tryA := append(assignment(nil), a...)
	tryA[v] = 1
	if res, ok := dpll(clauses, tryA); ok {
		return res, true
	}

	tryB := append(assignment(nil), a...)
	tryB[v] = -1
	return dpll(clauses, tryB)
}

// status reports (allClausesSatisfied, anyClauseFalsified) under a.
func status(clauses []clause, a assignment) (sat bool, conflict bool) {
	allSat := true
	for _, c := range clauses {
		satClause, allFalse := evalClause(c, a)
		if satClause {
			continue
		}
		allSat = false
		if allFalse {
			return false, true
		}
	}
	return allSat, false
}

// evalClause reports whether c is already satisfied under a, and whether
// every literal in c is already assigned false (a conflict).
func evalClause(c clause, a assignment) (satisfied bool, allFalse bool) {
	allFalse = true
	for _, l := range c {
		val, known := a.value(l)
		if known && val {
			return true, false
		}
		if !known || val {
			allFalse = false
		}
	}
	return false, allFalse
}

// unitPropagate repeatedly satisfies unit clauses until a fixed point or a
// conflict is found.
func unitPropagate(clauses []clause, a assignment) ([]clause, assignment, bool) {
	a = append(assignment(nil), a...)
	for {
		unit, lit, found := findUnit(clauses, a)
		if !found {
			return clauses, a, true
		}
		_ = unit
		v := lit.variable()
		if lit.negated() {
			a[v] = -1
		} else {
			a[v] = 1
		}
		if _, conflict := status(clauses, a); conflict {
			return clauses, a, false
		}
	}
}

// findUnit returns a clause that is unit (exactly one unassigned literal,
// no satisfied literal) under a.
func findUnit(clauses []clause, a assignment) (clause, literal, bool) {
	for _, c := range clauses {
		var unassigned literal
		count := 0
		satisfied := false
		for _, l := range c {
			val, known := a.value(l)
			if known {
				if val {
					satisfied = true
					break
				}
				continue
			}
			count++
			unassigned = l
		}
		if satisfied {
			continue
		}
		if count == 1 {
			return c, unassigned, true
		}
	}
	return nil, 0, false
}

// eliminatePureLiterals assigns variables that occur with only one polarity
// across all not-yet-satisfied clauses; this never changes satisfiability
// but can shrink the remaining search.
func eliminatePureLiterals(clauses []clause, a assignment) ([]clause, assignment) {
	a = append(assignment(nil), a...)
	posSeen := make([]bool, len(a))
	negSeen := make([]bool, len(a))
	for _, c := range clauses {
		if sat, _ := evalClause(c, a); sat {
			continue
		}
		for _, l := range c {
			v := l.variable()
			if a[v] != 0 {
				continue
			}
			if l.negated() {
				negSeen[v] = true
			} else {
				posSeen[v] = true
			}
		}
	}
	for v := range a {
		if a[v] != 0 {
			continue
		}
		if posSeen[v] && !negSeen[v] {
			a[v] = 1
		} else if negSeen[v] && !posSeen[v] {
			a[v] = -1
		}
	}
	return clauses, a
}

func firstUnassigned(a assignment) int {
	for i, v := range a {
		if v == 0 {
			return i
		}
	}
	return -1
}
