package satsolve

import (
	"fmt"

	"github.com/arcrouting/tunnelsat/action"
	"github.com/arcrouting/tunnelsat/satfacade"
	"github.com/arcrouting/tunnelsat/tunnel"
)

// Height returns H(L) = ⌊L/2⌋+1, the maximum stack height an L-step path
// can reach (only pushes grow it, and each must be matched by a pop to
// return to height 1).
func Height(length int) int { return length/2 + 1 }

// vars names the three boolean-variable families of spec.md §4.D over a
// shared satfacade.Context, so that repeated requests for the same
// (node, pos, height) triple always resolve to the same variable.
type vars struct{ ctx *satfacade.Context }

func (v vars) x(node, pos, height int) satfacade.Formula {
	return v.ctx.Var(fmt.Sprintf("x(%d,%d,%d)", node, pos, height))
}

func (v vars) y4(pos, height int) satfacade.Formula {
	return v.ctx.Var(fmt.Sprintf("y4(%d,%d)", pos, height))
}

func (v vars) y6(pos, height int) satfacade.Formula {
	return v.ctx.Var(fmt.Sprintf("y6(%d,%d)", pos, height))
}

func (v vars) ySym(sym action.Symbol, pos, height int) satfacade.Formula {
	if sym == action.Four {
		return v.y4(pos, height)
	}
	return v.y6(pos, height)
}

func other(sym action.Symbol) action.Symbol {
	if sym == action.Four {
		return action.Six
	}
	return action.Four
}

// Encode builds φ(L): the propositional formula over ctx that is
// satisfiable iff net admits a valid simple path of length exactly length.
func Encode(ctx *satfacade.Context, net *tunnel.Network, length int) satfacade.Formula {
	n := net.NumNodes()
	h := Height(length)
	v := vars{ctx: ctx}

	var clauses []satfacade.Formula

	// 1. Uniqueness of state: exactly one x(.,p,.) per position.
	for p := 0; p <= length; p++ {
		var xs []satfacade.Formula
		for u := 0; u < n; u++ {
			for ht := 0; ht < h; ht++ {
				xs = append(xs, v.x(u, p, ht))
			}
		}
		clauses = append(clauses, satfacade.ExactlyOne(xs...))
	}

	// 2. Stack cells are consistent: not both y4 and y6.
	for p := 0; p <= length; p++ {
		for ht := 0; ht < h; ht++ {
			clauses = append(clauses, satfacade.Not(satfacade.And(v.y4(p, ht), v.y6(p, ht))))
		}
	}

	// 3. No gaps: empty cell implies every cell above is empty too.
	for p := 0; p <= length; p++ {
		for ht := 0; ht < h; ht++ {
			empty := satfacade.And(satfacade.Not(v.y4(p, ht)), satfacade.Not(v.y6(p, ht)))
			for ht2 := ht + 1; ht2 < h; ht2++ {
				emptyAbove := satfacade.And(satfacade.Not(v.y4(p, ht2)), satfacade.Not(v.y6(p, ht2)))
				clauses = append(clauses, satfacade.Implies(empty, emptyAbove))
			}
		}
	}

	// 4. Initial condition: initial node, height 0, stack [4].
	clauses = append(clauses, pinNode(v, n, h, 0, net.Initial())...)
	clauses = append(clauses, v.y4(0, 0), satfacade.Not(v.y6(0, 0)))
	for ht := 1; ht < h; ht++ {
		clauses = append(clauses, satfacade.Not(v.y4(0, ht)), satfacade.Not(v.y6(0, ht)))
	}

	// 5. Final condition: final node, height 0, stack [4].
	clauses = append(clauses, pinNode(v, n, h, length, net.Final())...)
	clauses = append(clauses, v.y4(length, 0), satfacade.Not(v.y6(length, 0)))
	for ht := 1; ht < h; ht++ {
		clauses = append(clauses, satfacade.Not(v.y4(length, ht)), satfacade.Not(v.y6(length, ht)))
	}

	// 6. Edge constraint: non-edges cannot be consecutive.
	for p := 0; p < length; p++ {
		for u := 0; u < n; u++ {
			for vv := 0; vv < n; vv++ {
				if net.IsEdge(u, vv) {
					continue
				}
				for h1 := 0; h1 < h; h1++ {
					for h2 := 0; h2 < h; h2++ {
						clauses = append(clauses, satfacade.Or(satfacade.Not(v.x(u, p, h1)), satfacade.Not(v.x(vv, p+1, h2))))
					}
				}
			}
		}
	}

	// 7. Simplicity: a node occupies at most one position.
	for u := 0; u < n; u++ {
		for p1 := 0; p1 <= length; p1++ {
			for p2 := p1 + 1; p2 <= length; p2++ {
				for h1 := 0; h1 < h; h1++ {
					for h2 := 0; h2 < h; h2++ {
						clauses = append(clauses, satfacade.Or(satfacade.Not(v.x(u, p1, h1)), satfacade.Not(v.x(u, p2, h2))))
					}
				}
			}
		}
	}

	// 8. Transitions. A node occupying any position before the last must have at
	// least one applicable action; a node with no options at all (empty
	// mask, or every action blocked by height) cannot occupy that
	// position, so the implication degenerates to x(u,p,hs) ⇒ false.
	for p := 0; p < length; p++ {
		for u := 0; u < n; u++ {
			mask := net.ActionMask(u)
			for hs := 0; hs < h; hs++ {
				if mask.Len() == 0 {
					clauses = append(clauses, satfacade.Not(v.x(u, p, hs)))
					continue
				}
				var options []satfacade.Formula
				mask.Each(func(a action.Action) {
					if f, ok := validTransition(v, net, u, p, hs, h, a); ok {
						options = append(options, f)
					}
				})
				if len(options) == 0 {
					clauses = append(clauses, satfacade.Not(v.x(u, p, hs)))
					continue
				}
				clauses = append(clauses, satfacade.Implies(v.x(u, p, hs), satfacade.Or(options...)))
			}
		}
	}

	return satfacade.And(clauses...)
}

// pinNode asserts that, at position pos, the only true x(·,pos,·) variable
// is x(node,pos,0).
func pinNode(v vars, n, h, pos, node int) []satfacade.Formula {
	var out []satfacade.Formula
	for u := 0; u < n; u++ {
		for ht := 0; ht < h; ht++ {
			if u == node && ht == 0 {
				out = append(out, v.x(u, pos, ht))
			} else {
				out = append(out, satfacade.Not(v.x(u, pos, ht)))
			}
		}
	}
	return out
}

// validTransition builds valid(α,u,p,hs) per spec.md §4.D clause family 8,
// or reports ok == false if α cannot apply at height hs (push at the
// ceiling, pop at the floor).
func validTransition(v vars, net *tunnel.Network, u, p, hs, h int, a action.Action) (satfacade.Formula, bool) {
	var hsPrime int
	switch a.Kind() {
	case action.Transmit:
		hsPrime = hs
	case action.Push:
		if hs+1 >= h {
			return satfacade.Formula{}, false
		}
		hsPrime = hs + 1
	case action.Pop:
		if hs < 1 {
			return satfacade.Formula{}, false
		}
		hsPrime = hs - 1
	}

	var parts []satfacade.Formula

	// Top-before predicate.
	parts = append(parts, v.ySym(a.Top(), p, hs))

	// Below-before predicate: pop additionally requires the cell beneath
	// the top to hold the expected symbol. Not stated as a separate
	// bullet in spec.md's prose (only "top-before" is named), but
	// required for soundness — without it a pop could fire regardless of
	// what lies beneath, which would let the decoder and brute force
	// disagree.
	if a.Kind() == action.Pop {
		parts = append(parts, v.ySym(a.Below(), p, hs-1))
	}

	// Successor existence.
	var succ []satfacade.Formula
	for vv := 0; vv < net.NumNodes(); vv++ {
		if net.IsEdge(u, vv) {
			succ = append(succ, v.x(vv, p+1, hsPrime))
		}
	}
	if len(succ) == 0 {
		return satfacade.Formula{}, false
	}
	parts = append(parts, satfacade.Or(succ...))

	// Stack after: cells unaffected by α keep their value across p, p+1.
	// Transmit writes nothing explicitly (hsPrime == hs), so its top cell
	// must stay in this equivalence, not be excluded from it — excluding
	// it would leave the symbol at (p+1,hs) unconstrained and let a model
	// flip 4↔6 across a transmit. Push writes hsPrime explicitly below, so
	// it is excluded here. Pop vacates hs itself (handled by the explicit
	// Not()s below) and writes hsPrime explicitly, so both are excluded.
	for ht := 0; ht < h; ht++ {
		if a.Kind() != action.Transmit && ht == hsPrime {
			continue
		}
		if a.Kind() == action.Pop && ht == hs {
			continue
		}
		parts = append(parts, satfacade.Iff(v.y4(p, ht), v.y4(p+1, ht)))
		parts = append(parts, satfacade.Iff(v.y6(p, ht), v.y6(p+1, ht)))
	}

	switch a.Kind() {
	case action.Push:
		pushed := a.Pushed()
		parts = append(parts, v.ySym(pushed, p+1, hsPrime))
		parts = append(parts, satfacade.Not(v.ySym(other(pushed), p+1, hsPrime)))
	case action.Pop:
		parts = append(parts, satfacade.Not(v.y4(p+1, hs)), satfacade.Not(v.y6(p+1, hs)))
		parts = append(parts, v.ySym(a.Below(), p+1, hsPrime))
	}

	return satfacade.And(parts...), true
}
