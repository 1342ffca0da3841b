package graph_test

import (
	"testing"

	"github.com/arcrouting/tunnelsat/graph"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"
)

func chain(t *testing.T, n int) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder("chain")
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		id, err := b.AddNode(string(rune('A'+i)), nil)
		require.NoError(t, err)
		ids[i] = id
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, b.AddEdge(ids[i], ids[i+1]))
	}
	return b.Build()
}

func TestBuilderBasics(t *testing.T) {
	g := chain(t, 3)
	require.Equal(t, 3, g.NumNodes())
	require.Equal(t, 2, g.NumEdges())
	require.True(t, g.HasEdge(0, 1))
	require.False(t, g.HasEdge(1, 0))
	require.False(t, g.HasEdge(0, 2))
	require.Equal(t, "A", g.NodeName(0))
}

func TestBuilderEmptyName(t *testing.T) {
	b := graph.NewBuilder("x")
	_, err := b.AddNode("", nil)
	require.ErrorIs(t, err, graph.ErrEmptyName)
}

func TestBuilderDuplicateEdge(t *testing.T) {
	b := graph.NewBuilder("x")
	a, _ := b.AddNode("A", nil)
	c, _ := b.AddNode("B", nil)
	require.NoError(t, b.AddEdge(a, c))
	require.ErrorIs(t, b.AddEdge(a, c), graph.ErrDuplicateEdge)
}

func TestNodeAttr(t *testing.T) {
	b := graph.NewBuilder("x")
	n, _ := b.AddNode("A", map[string]string{"shape": "square"})
	g := b.Build()
	v, ok := g.NodeAttr(n, "shape")
	require.True(t, ok)
	require.Equal(t, "square", v)

	_, ok = g.NodeAttr(n, "missing")
	require.False(t, ok)
}

func TestOutOfRangePanics(t *testing.T) {
	g := chain(t, 1)
	require.Panics(t, func() { g.NodeName(5) })
}

func TestGonumAdapterPathExists(t *testing.T) {
	g := chain(t, 4)
	require.True(t, topo.PathExistsIn(g.Gonum(), intNode(0), intNode(3)))
	require.False(t, topo.PathExistsIn(g.Gonum(), intNode(3), intNode(0)))
}

// intNode is a minimal gonum graph.Node for use from tests only.
type intNode int64

func (n intNode) ID() int64 { return int64(n) }
