package satsolve

import (
	"errors"
	"fmt"

	"github.com/arcrouting/tunnelsat/action"
	"github.com/arcrouting/tunnelsat/satfacade"
	"github.com/arcrouting/tunnelsat/tunnel"
)

// ErrDecode wraps a malformed model: either no (or more than one) node/
// height pair is true at some position, or a position pair's height delta
// doesn't correspond to any legal action.
var ErrDecode = errors.New("satsolve: malformed model")

// Decode reconstructs the path a satisfying model of Encode(ctx, net,
// length) describes, per spec.md §4.D's decoder algorithm.
func Decode(ctx *satfacade.Context, model satfacade.Model, net *tunnel.Network, length int) ([]tunnel.Step, error) {
	h := Height(length)
	v := vars{ctx: ctx}
	n := net.NumNodes()

	nodes := make([]int, length+1)
	heights := make([]int, length+1)
	for p := 0; p <= length; p++ {
		node, height, err := uniqueTrue(v, model, n, h, p)
		if err != nil {
			return nil, err
		}
		nodes[p] = node
		heights[p] = height
	}

	steps := make([]tunnel.Step, length)
	for p := 0; p < length; p++ {
		delta := heights[p+1] - heights[p]
		act, err := decodeAction(v, model, p, heights[p], heights[p+1], delta)
		if err != nil {
			return nil, err
		}
		steps[p] = tunnel.Step{Source: nodes[p], Target: nodes[p+1], Action: act}
	}
	return steps, nil
}

func uniqueTrue(v vars, model satfacade.Model, n, h, pos int) (node int, height int, err error) {
	found := false
	for u := 0; u < n; u++ {
		for ht := 0; ht < h; ht++ {
			if !model.Value(v.x(u, pos, ht)) {
				continue
			}
			if found {
				return 0, 0, fmt.Errorf("%w: position %d has more than one (node,height) true", ErrDecode, pos)
			}
			node, height, found = u, ht, true
		}
	}
	if !found {
		return 0, 0, fmt.Errorf("%w: position %d has no (node,height) true", ErrDecode, pos)
	}
	return node, height, nil
}

func decodeAction(v vars, model satfacade.Model, pos, hs, hsPrime, delta int) (action.Action, error) {
	switch delta {
	case 0:
		if model.Value(v.y4(pos, hs)) {
			return action.Transmit4, nil
		}
		return action.Transmit6, nil

	case 1:
		a := symbolAt(v, model, pos, hs)
		b := symbolAt(v, model, pos+1, hsPrime)
		return pushFor(b, a), nil

	case -1:
		b := symbolAt(v, model, pos, hs)
		a := symbolAt(v, model, pos+1, hsPrime)
		return popFor(b, a), nil

	default:
		return action.Action{}, fmt.Errorf("%w: position %d has height delta %d", ErrDecode, pos, delta)
	}
}

func symbolAt(v vars, model satfacade.Model, pos, height int) action.Symbol {
	if model.Value(v.y4(pos, height)) {
		return action.Four
	}
	return action.Six
}

func pushFor(pushed, before action.Symbol) action.Action {
	for _, a := range action.All() {
		if a.Kind() == action.Push && a.Top() == before && a.Pushed() == pushed {
			return a
		}
	}
	return action.Action{}
}

func popFor(top, below action.Symbol) action.Action {
	for _, a := range action.All() {
		if a.Kind() == action.Pop && a.Top() == top && a.Below() == below {
			return a
		}
	}
	return action.Action{}
}
