package bruteforce

import (
	"context"
	"errors"

	"github.com/arcrouting/tunnelsat/action"
	"github.com/arcrouting/tunnelsat/tunnel"
)

// ErrBoundTooSmall indicates a non-positive bound was supplied.
var ErrBoundTooSmall = errors.New("bruteforce: bound must be >= 1")

// Options configures Solve.
type Options struct {
	// Ctx allows cancellation of a long search; if nil, context.Background() is used.
	Ctx context.Context
	// OnAttempt(L), if set, is called before the DFS for each candidate length is launched.
	OnAttempt func(length int)
}

// Solve searches, for L = 1..bound, for the shortest simple path from
// net.Initial() to net.Final() whose stack trace begins and ends at [4]. It
// returns the found path (length == len(path)) or, if none exists up to
// bound, a nil path and length 0 — the buffer-unchanged-on-failure contract
// of spec.md §8 Open Question (b) is expressed here simply by never
// allocating or returning a partial buffer on failure.
//
// Neighbours are tried in ascending node-index order and actions in
// declaration order (action.All()), matching spec.md §4.C's determinism
// requirement.
func Solve(net *tunnel.Network, bound int, opts *Options) ([]tunnel.Step, int, error) {
	if bound < 1 {
		return nil, 0, ErrBoundTooSmall
	}
	ctx := context.Background()
	if opts != nil && opts.Ctx != nil {
		ctx = opts.Ctx
	}

	if !net.Reachable() {
		return nil, 0, nil
	}

	w := &walker{
		net:     net,
		ctx:     ctx,
		visited: make([]bool, net.NumNodes()),
	}

	for length := 1; length <= bound; length++ {
		if opts != nil && opts.OnAttempt != nil {
			opts.OnAttempt(length)
		}
		for i := range w.visited {
			w.visited[i] = false
		}
		w.path = make([]tunnel.Step, length)
		w.limit = length

		ok, err := w.traverse(net.Initial(), action.Stack{action.Four}, 0)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			return w.path[:length], length, nil
		}
	}

	return nil, 0, nil
}

type walker struct {
	net     *tunnel.Network
	ctx     context.Context
	visited []bool
	path    []tunnel.Step
	limit   int
}

// traverse mirrors TunnelBF.c's dfs: it returns true the instant a
// successful branch is found, propagating up without further search.
func (w *walker) traverse(node int, stack action.Stack, pos int) (bool, error) {
	if err := w.checkCancel(); err != nil {
		return false, err
	}

	if node == w.net.Final() && stack.Height() == 0 && stack.Top() == action.Four && pos >= 1 {
		return true, nil
	}
	if pos == w.limit {
		return false, nil
	}

	w.visited[node] = true
	defer func() { w.visited[node] = false }()

	n := w.net.NumNodes()
	for next := 0; next < n; next++ {
		if !w.net.IsEdge(node, next) || w.visited[next] {
			continue
		}
		for _, act := range action.All() {
			if !w.net.HasAction(node, act) {
				continue
			}
			nextStack, ok := action.Apply(act, stack)
			if !ok {
				continue
			}
			w.path[pos] = tunnel.Step{Source: node, Target: next, Action: act}
			found, err := w.traverse(next, nextStack, pos+1)
			if err != nil {
				return false, err
			}
			if found {
				return true, nil
			}
		}
	}

	return false, nil
}

func (w *walker) checkCancel() error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
		return nil
	}
}
