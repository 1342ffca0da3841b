package satsolve

import (
	"errors"

	"github.com/arcrouting/tunnelsat/colour"
	"github.com/arcrouting/tunnelsat/satfacade"
)

// ErrTooFewColours indicates a non-positive colour count was supplied.
var ErrTooFewColours = errors.New("satsolve: numColours must be >= 1")

// Outcome carries Solve's result. Coloured reports whether a proper
// colouring with numColours colours exists; when true, g has been updated
// in place with the decoded colours.
type Outcome struct {
	Coloured bool
	Ctx      *satfacade.Context
	Formula  satfacade.Formula
	Model    satfacade.Model
}

// Solve builds φ(numColours) for g via Encode, decides it with solver, and
// on success writes the decoded colouring into g. On UNSAT or UNKNOWN, g is
// left with every colour reset to colour.Unset, matching the brute-force
// solver's failure contract.
func Solve(g *colour.Graph, numColours int, solver satfacade.Solver) (Outcome, error) {
	if numColours < 1 {
		return Outcome{}, ErrTooFewColours
	}

	ctx := satfacade.NewContext()
	formula := Encode(ctx, g.NumNodes(), g.IsEdge, numColours)

	result, model := solver.Solve(ctx, formula)
	if result != satfacade.Satisfiable {
		g.ResetColours()
		return Outcome{Ctx: ctx, Formula: formula}, nil
	}

	colours, err := Decode(ctx, model, g.NumNodes(), numColours)
	if err != nil {
		g.ResetColours()
		return Outcome{}, err
	}
	for n, k := range colours {
		g.SetColour(n, k)
	}
	return Outcome{Coloured: true, Ctx: ctx, Formula: formula, Model: model}, nil
}
