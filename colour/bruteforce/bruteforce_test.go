package bruteforce_test

import (
	"testing"

	"github.com/arcrouting/tunnelsat/colour"
	"github.com/arcrouting/tunnelsat/colour/bruteforce"
	"github.com/arcrouting/tunnelsat/graph"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *colour.Graph {
	t.Helper()
	b := graph.NewBuilder("triangle")
	a, _ := b.AddNode("A", nil)
	bb, _ := b.AddNode("B", nil)
	c, _ := b.AddNode("C", nil)
	require.NoError(t, b.AddEdge(a, bb))
	require.NoError(t, b.AddEdge(bb, c))
	require.NoError(t, b.AddEdge(c, a))
	return colour.New(b.Build())
}

func TestSolveTriangleTwoColoursFails(t *testing.T) {
	g := triangle(t)
	ok, err := bruteforce.Solve(g, 2, nil)
	require.NoError(t, err)
	require.False(t, ok)
	for n := 0; n < g.NumNodes(); n++ {
		require.Equal(t, colour.Unset, g.Colour(n))
	}
}

func TestSolveTriangleThreeColoursSucceeds(t *testing.T) {
	g := triangle(t)
	ok, err := bruteforce.Solve(g, 3, nil)
	require.NoError(t, err)
	require.True(t, ok)
	for n := 0; n < g.NumNodes(); n++ {
		for m := n + 1; m < g.NumNodes(); m++ {
			if g.IsEdge(n, m) {
				require.NotEqual(t, g.Colour(n), g.Colour(m))
			}
		}
	}
}

func TestSolveTooFewColours(t *testing.T) {
	g := triangle(t)
	_, err := bruteforce.Solve(g, 0, nil)
	require.ErrorIs(t, err, bruteforce.ErrTooFewColours)
}
