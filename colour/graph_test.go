package colour_test

import (
	"testing"

	"github.com/arcrouting/tunnelsat/colour"
	"github.com/arcrouting/tunnelsat/graph"
	"github.com/stretchr/testify/require"
)

func TestNewAllUnset(t *testing.T) {
	b := graph.NewBuilder("x")
	a, _ := b.AddNode("A", nil)
	bb, _ := b.AddNode("B", nil)
	require.NoError(t, b.AddEdge(a, bb))
	g := colour.New(b.Build())

	require.Equal(t, colour.Unset, g.Colour(a))
	require.Equal(t, colour.Unset, g.Colour(bb))
	require.Equal(t, 2, g.NumNodes())
	require.Equal(t, 1, g.NumEdges())
	require.True(t, g.IsEdge(a, bb))
}

func TestSetColourAndReset(t *testing.T) {
	b := graph.NewBuilder("x")
	a, _ := b.AddNode("A", nil)
	g := colour.New(b.Build())

	g.SetColour(a, 2)
	require.Equal(t, 2, g.Colour(a))

	g.ResetColours()
	require.Equal(t, colour.Unset, g.Colour(a))
}

func TestColourOutOfRangePanics(t *testing.T) {
	b := graph.NewBuilder("x")
	b.AddNode("A", nil)
	g := colour.New(b.Build())
	require.Panics(t, func() { g.Colour(5) })
}
