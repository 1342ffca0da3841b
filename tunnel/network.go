package tunnel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcrouting/tunnelsat/action"
	"github.com/arcrouting/tunnelsat/graph"
	"gonum.org/v1/gonum/graph/topo"
)

// Sentinel errors returned by New and the setters below.
var (
	// ErrNoInitial indicates no node carries shape=square.
	ErrNoInitial = errors.New("tunnel: no node has shape \"square\" (initial)")
	// ErrNoFinal indicates no node carries shape=invtriangle.
	ErrNoFinal = errors.New("tunnel: no node has shape \"invtriangle\" (final)")
	// ErrAmbiguousShape indicates more than one node claims the same shape.
	ErrAmbiguousShape = errors.New("tunnel: more than one node claims the same shape")
	// ErrNodeRange indicates a node index fell outside [0, NumNodes).
	ErrNodeRange = errors.New("tunnel: node index out of range")
)

// labelSeparator is the literal token delimiter used by node "label"
// attributes. spec.md leaves its exact semantics as an open question: the
// original C parser treats it as a strtok(3) character class (splitting on
// any of '\\', 'n', '"'), but the three characters never legally appear
// inside a recognised token, so splitting on the literal three-byte
// sequence produces the same tokenisation for every well-formed label and
// is the contract documented for this parser. See DESIGN.md.
const labelSeparator = `\n"`

// tokenActions maps each recognised label token to its action, built once
// from the canonical action table so the grammar in spec.md §4.A and the
// action package's String() representation cannot drift apart.
var tokenActions = func() map[string]action.Action {
	m := make(map[string]action.Action, action.NumActions)
	for _, a := range action.All() {
		m[a.String()] = a
	}
	return m
}()

// Network is an immutable Tunnel Network: a graph.Graph enriched with
// per-node action masks and designated initial/final nodes.
type Network struct {
	graph   *graph.Graph
	initial int
	final   int
	masks   []action.Set
}

// New derives a Network from g. The "shape" attribute selects initial
// (value "square") and final (value "invtriangle") nodes; exactly one node
// of each shape must exist, per spec.md §8 Open Question (c) — ambiguous or
// absent shapes are input errors here, not silently defaulted to node 0.
// The "label" attribute, if present, is tokenised on labelSeparator and
// each recognised token sets the corresponding bit of that node's action
// mask; unrecognised tokens are ignored.
//
// g is not copied and must not be mutated afterwards.
func New(g *graph.Graph) (*Network, error) {
	n := g.NumNodes()
	masks := make([]action.Set, n)
	initial, haveInitial := -1, false
	final, haveFinal := -1, false

	for node := 0; node < n; node++ {
		if shape, ok := g.NodeAttr(node, "shape"); ok {
			switch shape {
			case "square":
				if haveInitial {
					return nil, fmt.Errorf("%w: nodes %q and %q", ErrAmbiguousShape, g.NodeName(initial), g.NodeName(node))
				}
				initial, haveInitial = node, true
			case "invtriangle":
				if haveFinal {
					return nil, fmt.Errorf("%w: nodes %q and %q", ErrAmbiguousShape, g.NodeName(final), g.NodeName(node))
				}
				final, haveFinal = node, true
			}
		}

		label, ok := g.NodeAttr(node, "label")
		if !ok {
			continue
		}
		var mask action.Set
		for _, tok := range strings.Split(label, labelSeparator) {
			if a, known := tokenActions[tok]; known {
				mask = mask.Add(a)
			}
		}
		masks[node] = mask
	}

	if !haveInitial {
		return nil, ErrNoInitial
	}
	if !haveFinal {
		return nil, ErrNoFinal
	}

	return &Network{graph: g, initial: initial, final: final, masks: masks}, nil
}

// NumNodes returns the number of nodes.
func (net *Network) NumNodes() int { return net.graph.NumNodes() }

// NumEdges returns the number of edges.
func (net *Network) NumEdges() int { return net.graph.NumEdges() }

// IsEdge reports whether (source, target) is an edge of the underlying graph.
func (net *Network) IsEdge(source, target int) bool { return net.graph.HasEdge(source, target) }

// NodeName returns the name of node.
func (net *Network) NodeName(node int) string { return net.graph.NodeName(node) }

// HasAction reports whether node may perform act.
func (net *Network) HasAction(node int, act action.Action) bool {
	net.mustBeValid(node)
	return net.masks[node].Has(act)
}

// ActionMask returns the full action set available at node.
func (net *Network) ActionMask(node int) action.Set {
	net.mustBeValid(node)
	return net.masks[node]
}

// Initial returns the index of the initial node.
func (net *Network) Initial() int { return net.initial }

// SetInitial overrides the initial node. Exposed for tests only, per
// spec.md §4.A; callers are responsible for preserving 0 <= initial < N.
func (net *Network) SetInitial(node int) {
	net.mustBeValid(node)
	net.initial = node
}

// Final returns the index of the final node.
func (net *Network) Final() int { return net.final }

// SetFinal overrides the final node. Exposed for tests only; see SetInitial.
func (net *Network) SetFinal(node int) {
	net.mustBeValid(node)
	net.final = node
}

// Name returns the underlying graph's name.
func (net *Network) Name() string { return net.graph.Name() }

// Graph returns the underlying graph, for collaborators (e.g. the gonum
// reachability pre-check) that need the raw adjacency relation.
func (net *Network) Graph() *graph.Graph { return net.graph }

// Reachable reports whether final is reachable from initial in the
// underlying directed graph, ignoring stack constraints entirely. It is a
// pure optimization (SPEC_FULL.md §4.F): a false result proves no valid
// path exists for any bound, letting a solver front-end skip the L-loop
// altogether. A true result says nothing about stack feasibility.
func (net *Network) Reachable() bool {
	view := net.graph.Gonum()
	from := view.Node(int64(net.initial))
	to := view.Node(int64(net.final))
	return topo.PathExistsIn(view, from, to)
}

func (net *Network) mustBeValid(node int) {
	if node < 0 || node >= net.graph.NumNodes() {
		panic(fmt.Errorf("%w: %d", ErrNodeRange, node))
	}
}
