package dotgraph_test

import (
	"strings"
	"testing"

	"github.com/arcrouting/tunnelsat/graph/dotgraph"
	"github.com/stretchr/testify/require"
)

const sample = `
digraph G {
	n0 [shape=square, label="4\n\"46\n\"6"];
	n1 [shape=invtriangle, label="6"];
	n0 -> n1;
}
`

func TestLoadBasic(t *testing.T) {
	g, err := dotgraph.Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, 2, g.NumNodes())
	require.Equal(t, 1, g.NumEdges())

	names := map[string]int{}
	for i := 0; i < g.NumNodes(); i++ {
		names[g.NodeName(i)] = i
	}
	n0, n1 := names["n0"], names["n1"]
	require.True(t, g.HasEdge(n0, n1))

	shape, ok := g.NodeAttr(n0, "shape")
	require.True(t, ok)
	require.Equal(t, "square", shape)

	shape, ok = g.NodeAttr(n1, "shape")
	require.True(t, ok)
	require.Equal(t, "invtriangle", shape)
}

func TestLoadMalformed(t *testing.T) {
	_, err := dotgraph.Load(strings.NewReader("not a dot file {"))
	require.Error(t, err)
}
