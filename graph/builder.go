package graph

// Builder accumulates nodes and edges and produces an immutable *Graph.
// It is the mutable counterpart to Graph, in the spirit of the teacher's
// NewGraph(...)+AddVertex/AddEdge construction phase, but addresses nodes
// by the integer index returned from AddNode rather than by string key,
// since downstream consumers need stable 0..N-1 indices.
type Builder struct {
	name  string
	nodes []nodeData
	edges map[[2]int]struct{}
}

// NewBuilder returns an empty Builder for a graph named name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:  name,
		edges: make(map[[2]int]struct{}),
	}
}

// AddNode appends a node with the given name and attributes (attrs may be
// nil) and returns its index. Returns ErrEmptyName if name is empty.
func (b *Builder) AddNode(name string, attrs map[string]string) (int, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	cp := make(map[string]string, len(attrs))
	for k, v := range attrs {
		cp[k] = v
	}
	b.nodes = append(b.nodes, nodeData{name: name, attrs: cp})
	return len(b.nodes) - 1, nil
}

// AddEdge records a directed edge source -> target. Both indices must refer
// to nodes already added via AddNode. Returns ErrNodeRange if either index
// is invalid, or ErrDuplicateEdge if the edge was already added.
func (b *Builder) AddEdge(source, target int) error {
	if source < 0 || source >= len(b.nodes) || target < 0 || target >= len(b.nodes) {
		return ErrNodeRange
	}
	key := [2]int{source, target}
	if _, dup := b.edges[key]; dup {
		return ErrDuplicateEdge
	}
	b.edges[key] = struct{}{}
	return nil
}

// Build freezes the accumulated nodes and edges into an immutable *Graph.
// The Builder may continue to be used afterwards; Build always returns a
// fresh Graph reflecting the accumulated state at call time.
func (b *Builder) Build() *Graph {
	n := len(b.nodes)
	g := &Graph{
		name:      b.name,
		nodes:     make([]nodeData, n),
		adjacency: make([]bool, n*n),
		numEdges:  len(b.edges),
	}
	for i, nd := range b.nodes {
		attrs := make(map[string]string, len(nd.attrs))
		for k, v := range nd.attrs {
			attrs[k] = v
		}
		g.nodes[i] = nodeData{name: nd.name, attrs: attrs}
	}
	for key := range b.edges {
		g.adjacency[key[0]*n+key[1]] = true
	}
	return g
}
