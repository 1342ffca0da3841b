package colour

import (
	"errors"
	"fmt"

	"github.com/arcrouting/tunnelsat/graph"
)

// Unset is the colour of a node that has not yet been assigned one.
const Unset = -1

// ErrNodeRange indicates a node index fell outside [0, NumNodes).
var ErrNodeRange = errors.New("colour: node index out of range")

// Graph is a graph.Graph enriched with a mutable per-node colour, all
// initialised to Unset. Unlike tunnel.Network, a colour.Graph's colouring
// is meant to be written by the solvers in this module's colour/bruteforce
// and colour/satsolve subpackages, so — following the teacher's split
// between an immutable core.Graph and its mutable builder phase, here
// folded into one type because colouring is the only thing that ever
// changes — colours are plain mutable state, not rebuilt through a
// separate builder.
type Graph struct {
	graph   *graph.Graph
	colours []int
}

// New wraps g with all colours Unset. g is not copied and must not be
// mutated afterwards.
func New(g *graph.Graph) *Graph {
	colours := make([]int, g.NumNodes())
	for i := range colours {
		colours[i] = Unset
	}
	return &Graph{graph: g, colours: colours}
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int { return g.graph.NumNodes() }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return g.graph.NumEdges() }

// IsEdge reports whether (source, target) is an edge of the underlying graph.
func (g *Graph) IsEdge(source, target int) bool { return g.graph.HasEdge(source, target) }

// NodeName returns the name of node.
func (g *Graph) NodeName(node int) string { return g.graph.NodeName(node) }

// Colour returns node's current colour, or Unset.
func (g *Graph) Colour(node int) int {
	g.mustBeValid(node)
	return g.colours[node]
}

// SetColour sets node's colour.
func (g *Graph) SetColour(node, colour int) {
	g.mustBeValid(node)
	g.colours[node] = colour
}

// ResetColours sets every node's colour back to Unset.
func (g *Graph) ResetColours() {
	for i := range g.colours {
		g.colours[i] = Unset
	}
}

// Graph returns the underlying graph, for collaborators that need the raw
// adjacency relation (e.g. a DOT re-emitter).
func (g *Graph) Graph() *graph.Graph { return g.graph }

func (g *Graph) mustBeValid(node int) {
	if node < 0 || node >= g.graph.NumNodes() {
		panic(fmt.Errorf("%w: %d", ErrNodeRange, node))
	}
}
