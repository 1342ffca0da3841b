package bruteforce

import (
	"context"
	"errors"

	"github.com/arcrouting/tunnelsat/colour"
)

// ErrTooFewColours indicates a non-positive colour count was supplied.
var ErrTooFewColours = errors.New("bruteforce: numColours must be >= 1")

// Options configures Solve.
type Options struct {
	// Ctx allows cancellation; if nil, context.Background() is used.
	Ctx context.Context
}

// Solve attempts to colour g with numColours colours via depth-first search
// with neighbour pruning, writing the result into g and returning true on
// success. On failure every node's colour is reset to colour.Unset, per
// spec.md §4.E.
func Solve(g *colour.Graph, numColours int, opts *Options) (bool, error) {
	if numColours < 1 {
		return false, ErrTooFewColours
	}
	ctx := context.Background()
	if opts != nil && opts.Ctx != nil {
		ctx = opts.Ctx
	}

	w := &walker{g: g, k: numColours, ctx: ctx}
	ok, err := w.assign(0)
	if err != nil {
		g.ResetColours()
		return false, err
	}
	if !ok {
		g.ResetColours()
	}
	return ok, nil
}

type walker struct {
	g   *colour.Graph
	k   int
	ctx context.Context
}

func (w *walker) assign(node int) (bool, error) {
	if err := w.checkCancel(); err != nil {
		return false, err
	}
	n := w.g.NumNodes()
	if node == n {
		return true, nil
	}

	for col := 0; col < w.k; col++ {
		w.g.SetColour(node, col)
		if !w.clashesWithColoured(node, col) {
			ok, err := w.assign(node + 1)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		if node == 0 {
			// Colour-permutation symmetry break: every other choice for
			// node 0 is isomorphic to colour 0, so one failed attempt
			// here means no colouring exists.
			return false, nil
		}
	}

	w.g.SetColour(node, colour.Unset)
	return false, nil
}

func (w *walker) clashesWithColoured(node, col int) bool {
	for other := 0; other < node; other++ {
		// The colouring constraint is symmetric regardless of the
		// underlying directed graph's edge direction, so both (node,other)
		// and (other,node) count as adjacency.
		if (w.g.IsEdge(node, other) || w.g.IsEdge(other, node)) && w.g.Colour(other) == col {
			return true
		}
	}
	return false
}

func (w *walker) checkCancel() error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
		return nil
	}
}
