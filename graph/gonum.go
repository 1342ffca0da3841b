package graph

import gonumgraph "gonum.org/v1/gonum/graph"

// id is a gonum graph.Node wrapping one of this package's integer node
// indices, letting Graph be consumed directly by gonum's topology helpers
// (graph/topo) without copying the adjacency relation into a gonum-native
// graph first.
type id int64

func (n id) ID() int64 { return int64(n) }

// gonumView adapts *Graph to gonum's graph.Directed interface.
type gonumView struct{ g *Graph }

// Gonum returns g adapted to gonum's graph.Directed interface, so that
// algorithms such as graph/topo.PathExistsIn can run against it directly.
func (g *Graph) Gonum() gonumgraph.Directed { return gonumView{g: g} }

func (v gonumView) Node(nodeID int64) gonumgraph.Node {
	if nodeID < 0 || nodeID >= int64(v.g.NumNodes()) {
		return nil
	}
	return id(nodeID)
}

func (v gonumView) Nodes() gonumgraph.Nodes {
	nodes := make([]gonumgraph.Node, v.g.NumNodes())
	for i := range nodes {
		nodes[i] = id(i)
	}
	return &nodeIterator{nodes: nodes, pos: -1}
}

func (v gonumView) From(nodeID int64) gonumgraph.Nodes {
	var out []gonumgraph.Node
	n := v.g.NumNodes()
	for to := 0; to < n; to++ {
		if v.g.HasEdge(int(nodeID), to) {
			out = append(out, id(to))
		}
	}
	return &nodeIterator{nodes: out, pos: -1}
}

func (v gonumView) HasEdgeBetween(xid, yid int64) bool {
	return v.HasEdgeFromTo(xid, yid) || v.HasEdgeFromTo(yid, xid)
}

func (v gonumView) Edge(uid, vid int64) gonumgraph.Edge {
	if !v.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return simpleEdge{from: id(uid), to: id(vid)}
}

func (v gonumView) HasEdgeFromTo(uid, vid int64) bool {
	n := v.g.NumNodes()
	if uid < 0 || uid >= int64(n) || vid < 0 || vid >= int64(n) {
		return false
	}
	return v.g.HasEdge(int(uid), int(vid))
}

func (v gonumView) To(nodeID int64) gonumgraph.Nodes {
	var out []gonumgraph.Node
	n := v.g.NumNodes()
	for from := 0; from < n; from++ {
		if v.g.HasEdge(from, int(nodeID)) {
			out = append(out, id(from))
		}
	}
	return &nodeIterator{nodes: out, pos: -1}
}

type simpleEdge struct{ from, to gonumgraph.Node }

func (e simpleEdge) From() gonumgraph.Node         { return e.from }
func (e simpleEdge) To() gonumgraph.Node           { return e.to }
func (e simpleEdge) ReversedEdge() gonumgraph.Edge { return simpleEdge{from: e.to, to: e.from} }

// nodeIterator adapts a []graph.Node slice to gonum's graph.Nodes iterator.
type nodeIterator struct {
	nodes []gonumgraph.Node
	pos   int
}

func (it nodeIterator) Len() int { return len(it.nodes) - it.pos - 1 }

func (it *nodeIterator) Next() bool {
	if it.pos+1 >= len(it.nodes) {
		return false
	}
	it.pos++
	return true
}

func (it *nodeIterator) Node() gonumgraph.Node { return it.nodes[it.pos] }

func (it *nodeIterator) Reset() { it.pos = -1 }
