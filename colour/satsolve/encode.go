package satsolve

import (
	"fmt"

	"github.com/arcrouting/tunnelsat/satfacade"
)

// vars names the colour.Graph SAT reduction's single boolean-variable
// family over a shared satfacade.Context, mirroring tunnel/satsolve's vars.
type vars struct{ ctx *satfacade.Context }

func (v vars) c(node, colourIdx int) satfacade.Formula {
	return v.ctx.Var(fmt.Sprintf("c(%d,%d)", node, colourIdx))
}

// Encode builds the formula that is satisfiable iff g's underlying graph
// can be properly coloured with numColours colours, per spec.md §4.E:
//
//  1. every node has exactly one colour;
//  2. for every edge (n1, n2) and every colour, not both endpoints hold it.
func Encode(ctx *satfacade.Context, numNodes int, isEdge func(u, v int) bool, numColours int) satfacade.Formula {
	v := vars{ctx: ctx}
	var clauses []satfacade.Formula

	for n := 0; n < numNodes; n++ {
		var cs []satfacade.Formula
		for k := 0; k < numColours; k++ {
			cs = append(cs, v.c(n, k))
		}
		clauses = append(clauses, satfacade.ExactlyOne(cs...))
	}

	for n1 := 0; n1 < numNodes; n1++ {
		for n2 := n1 + 1; n2 < numNodes; n2++ {
			if !isEdge(n1, n2) && !isEdge(n2, n1) {
				continue
			}
			for k := 0; k < numColours; k++ {
				clauses = append(clauses, satfacade.Or(satfacade.Not(v.c(n1, k)), satfacade.Not(v.c(n2, k))))
			}
		}
	}

	return satfacade.And(clauses...)
}
