package dotgraph

import (
	"io"
	"strconv"

	"github.com/arcrouting/tunnelsat/graph"
	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
)

// dotNode is a gonum graph node that also satisfies dot.Node (for the
// textual node ID) and encoding.AttributeSetter (for "shape"/"label" and
// any other bracketed node attribute), which is what gonum's DOT decoder
// needs to hand attributes back to the caller.
type dotNode struct {
	id    int64
	dotID string
	attrs map[string]string
}

func (n *dotNode) ID() int64        { return n.id }
func (n *dotNode) DOTID() string    { return n.dotID }
func (n *dotNode) SetDOTID(s string) { n.dotID = s }

func (n *dotNode) SetAttribute(attr encoding.Attribute) error {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[attr.Key] = attr.Value
	return nil
}

// builderGraph is the mutable destination gonum's dot.Unmarshal populates;
// it is intentionally minimal, just enough to satisfy graph.Builder plus
// NewNode.
type builderGraph struct {
	nextID int64
	nodes  map[int64]*dotNode
	order  []int64
	edges  [][2]int64
	name   string
}

func newBuilderGraph() *builderGraph {
	return &builderGraph{nodes: make(map[int64]*dotNode)}
}

func (b *builderGraph) NewNode() gonumgraph.Node {
	n := &dotNode{id: b.nextID}
	b.nextID++
	return n
}

func (b *builderGraph) AddNode(n gonumgraph.Node) {
	dn, ok := n.(*dotNode)
	if !ok {
		return
	}
	if dn.dotID == "" {
		// Fall back to a positional name if the DOT source never set one.
		dn.dotID = strconv.FormatInt(dn.ID(), 10)
	}
	b.nodes[dn.ID()] = dn
	b.order = append(b.order, dn.ID())
}

func (b *builderGraph) NewEdge(from, to gonumgraph.Node) gonumgraph.Edge {
	return simpleEdge{from: from, to: to}
}

func (b *builderGraph) SetEdge(e gonumgraph.Edge) {
	b.edges = append(b.edges, [2]int64{e.From().ID(), e.To().ID()})
}

func (b *builderGraph) SetDOTID(name string) { b.name = name }

type simpleEdge struct{ from, to gonumgraph.Node }

func (e simpleEdge) From() gonumgraph.Node         { return e.from }
func (e simpleEdge) To() gonumgraph.Node           { return e.to }
func (e simpleEdge) ReversedEdge() gonumgraph.Edge { return simpleEdge{from: e.to, to: e.from} }

// Load parses a DOT-like textual graph from r into a graph.Graph. Node
// attributes "shape" and "label" are carried through verbatim for the
// Tunnel/Colouring consumers to interpret; any other attribute is kept but
// unused, per spec.md §6.
func Load(r io.Reader) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	dst := newBuilderGraph()
	if err := dot.Unmarshal(data, dst); err != nil {
		return nil, err
	}

	b := graph.NewBuilder(dst.name)
	index := make(map[int64]int, len(dst.order))
	for _, nid := range dst.order {
		dn := dst.nodes[nid]
		name := dn.dotID
		if name == "" {
			name = dn.DOTID()
		}
		idx, err := b.AddNode(name, dn.attrs)
		if err != nil {
			return nil, err
		}
		index[nid] = idx
	}
	for _, e := range dst.edges {
		if err := b.AddEdge(index[e[0]], index[e[1]]); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}
