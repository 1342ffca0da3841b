package satsolve

import (
	"errors"

	"github.com/arcrouting/tunnelsat/satfacade"
	"github.com/arcrouting/tunnelsat/tunnel"
)

// ErrBoundTooSmall indicates a non-positive bound was supplied.
var ErrBoundTooSmall = errors.New("satsolve: bound must be >= 1")

// Options configures Solve.
type Options struct {
	// OnAttempt(length), if set, is called before each candidate length's
	// formula is built and solved.
	OnAttempt func(length int)
	// KeepFormula, if set, retains the last built formula (for callers
	// that want to dump it, per the CLI's --dump-formula flag) regardless
	// of whether it was satisfiable.
	KeepFormula bool
}

// Outcome carries Solve's result, including the formula/context for the
// length that either succeeded or was the last one tried, when
// opts.KeepFormula is set.
type Outcome struct {
	Path    []tunnel.Step
	Length  int
	Ctx     *satfacade.Context
	Formula satfacade.Formula
	Model   satfacade.Model
}

// Solve iterates length = 1..bound, building φ(length) via Encode and
// deciding it with solver, and returns the first satisfiable length's
// decoded path. Length == 0 in the result means no solution was found up
// to bound.
func Solve(net *tunnel.Network, bound int, solver satfacade.Solver, opts *Options) (Outcome, error) {
	if bound < 1 {
		return Outcome{}, ErrBoundTooSmall
	}

	if !net.Reachable() {
		return Outcome{}, nil
	}

	var last Outcome
	for length := 1; length <= bound; length++ {
		if opts != nil && opts.OnAttempt != nil {
			opts.OnAttempt(length)
		}

		ctx := satfacade.NewContext()
		formula := Encode(ctx, net, length)

		if opts != nil && opts.KeepFormula {
			last = Outcome{Ctx: ctx, Formula: formula}
		}

		result, model := solver.Solve(ctx, formula)
		if result != satfacade.Satisfiable {
			continue
		}

		path, err := Decode(ctx, model, net, length)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Path: path, Length: length, Ctx: ctx, Formula: formula, Model: model}, nil
	}

	return last, nil
}
