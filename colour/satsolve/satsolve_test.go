package satsolve_test

import (
	"testing"

	"github.com/arcrouting/tunnelsat/colour"
	"github.com/arcrouting/tunnelsat/colour/satsolve"
	"github.com/arcrouting/tunnelsat/graph"
	"github.com/arcrouting/tunnelsat/satfacade"
	"github.com/arcrouting/tunnelsat/satfacade/dpll"
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

func bipartite23(t *testing.T) *colour.Graph {
	t.Helper()
	b := graph.NewBuilder("k23")
	l0, _ := b.AddNode("L0", nil)
	l1, _ := b.AddNode("L1", nil)
	r0, _ := b.AddNode("R0", nil)
	r1, _ := b.AddNode("R1", nil)
	r2, _ := b.AddNode("R2", nil)
	for _, l := range []int{l0, l1} {
		for _, r := range []int{r0, r1, r2} {
			require.NoError(t, b.AddEdge(l, r))
		}
	}
	return colour.New(b.Build())
}

func TestSolveTriangleTwoColoursUnsat(t *testing.T) {
	g := triangle(t)
	out, err := satsolve.Solve(g, 2, dpll.New(nil))
	require.NoError(t, err)
	require.False(t, out.Coloured)
	for n := 0; n < g.NumNodes(); n++ {
		require.Equal(t, colour.Unset, g.Colour(n))
	}
}

func TestSolveTriangleThreeColoursSat(t *testing.T) {
	g := triangle(t)
	out, err := satsolve.Solve(g, 3, dpll.New(nil))
	require.NoError(t, err)
	require.True(t, out.Coloured)
	for n := 0; n < g.NumNodes(); n++ {
		for m := n + 1; m < g.NumNodes(); m++ {
			if g.IsEdge(n, m) {
				require.NotEqual(t, g.Colour(n), g.Colour(m))
			}
		}
	}
}

func TestSolveBipartiteTwoColoursSat(t *testing.T) {
	g := bipartite23(t)
	out, err := satsolve.Solve(g, 2, dpll.New(nil))
	require.NoError(t, err)
	require.True(t, out.Coloured)
	for n := 0; n < g.NumNodes(); n++ {
		for m := 0; m < g.NumNodes(); m++ {
			if g.IsEdge(n, m) {
				require.NotEqual(t, g.Colour(n), g.Colour(m))
			}
		}
	}
}

func TestSolveTooFewColours(t *testing.T) {
	g := triangle(t)
	_, err := satsolve.Solve(g, 0, dpll.New(nil))
	require.ErrorIs(t, err, satsolve.ErrTooFewColours)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	g := bipartite23(t)
	ctx := satfacade.NewContext()
	formula := satsolve.Encode(ctx, g.NumNodes(), g.IsEdge, 2)
	result, model := dpll.New(nil).Solve(ctx, formula)
	require.Equal(t, satfacade.Satisfiable, result)

	colours, err := satsolve.Decode(ctx, model, g.NumNodes(), 2)
	require.NoError(t, err)
	require.Len(t, colours, g.NumNodes())
}
