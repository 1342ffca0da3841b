package satsolve_test

import (
	"testing"

	"github.com/arcrouting/tunnelsat/action"
	"github.com/arcrouting/tunnelsat/graph"
	"github.com/arcrouting/tunnelsat/satfacade/dpll"
	"github.com/arcrouting/tunnelsat/tunnel"
	"github.com/arcrouting/tunnelsat/tunnel/bruteforce"
	"github.com/arcrouting/tunnelsat/tunnel/satsolve"
	"github.com/stretchr/testify/require"
)

func TestHeight(t *testing.T) {
	require.Equal(t, 1, satsolve.Height(0))
	require.Equal(t, 1, satsolve.Height(1))
	require.Equal(t, 2, satsolve.Height(2))
	require.Equal(t, 2, satsolve.Height(3))
	require.Equal(t, 3, satsolve.Height(4))
}

func TestSolveTrivialTransmit(t *testing.T) {
	b := graph.NewBuilder("trivial")
	a, _ := b.AddNode("A", map[string]string{"shape": "square", "label": `4→4`})
	bb, _ := b.AddNode("B", map[string]string{"shape": "invtriangle"})
	require.NoError(t, b.AddEdge(a, bb))
	net, err := tunnel.New(b.Build())
	require.NoError(t, err)

	out, err := satsolve.Solve(net, 2, dpll.New(nil), nil)
	require.NoError(t, err)
	require.Equal(t, 1, out.Length)
	require.Equal(t, []tunnel.Step{{Source: a, Target: bb, Action: action.Transmit4}}, out.Path)
}

func TestSolvePushPopMinimum(t *testing.T) {
	b := graph.NewBuilder("pushpop")
	a, _ := b.AddNode("A", map[string]string{"shape": "square", "label": `4↑44`})
	m, _ := b.AddNode("M", map[string]string{"label": `44↓4`})
	c, _ := b.AddNode("C", map[string]string{"shape": "invtriangle"})
	require.NoError(t, b.AddEdge(a, m))
	require.NoError(t, b.AddEdge(m, c))
	net, err := tunnel.New(b.Build())
	require.NoError(t, err)

	out, err := satsolve.Solve(net, 3, dpll.New(nil), nil)
	require.NoError(t, err)
	require.Equal(t, 2, out.Length)
	require.Equal(t, action.Push44, out.Path[0].Action)
	require.Equal(t, action.Pop44, out.Path[1].Action)
}

func TestSolveIPv6Tunnelling(t *testing.T) {
	b := graph.NewBuilder("ipv6")
	a, _ := b.AddNode("A", map[string]string{"shape": "square", "label": `4↑46`})
	bb, _ := b.AddNode("B", map[string]string{"label": `6→6`})
	c, _ := b.AddNode("C", map[string]string{"label": `64↓6`})
	d, _ := b.AddNode("D", map[string]string{"shape": "invtriangle", "label": `64↓6`})
	require.NoError(t, b.AddEdge(a, bb))
	require.NoError(t, b.AddEdge(bb, c))
	require.NoError(t, b.AddEdge(c, d))
	net, err := tunnel.New(b.Build())
	require.NoError(t, err)

	out, err := satsolve.Solve(net, 3, dpll.New(nil), nil)
	require.NoError(t, err)
	require.Equal(t, 3, out.Length)
	require.Equal(t, []action.Action{action.Push46, action.Transmit6, action.Pop64},
		[]action.Action{out.Path[0].Action, out.Path[1].Action, out.Path[2].Action})
}

func TestSolveNoSolutionWithinBound(t *testing.T) {
	b := graph.NewBuilder("stuck")
	a, _ := b.AddNode("A", map[string]string{"shape": "square", "label": `4↑44`})
	bb, _ := b.AddNode("B", map[string]string{"shape": "invtriangle", "label": `6→6`})
	require.NoError(t, b.AddEdge(a, bb))
	net, err := tunnel.New(b.Build())
	require.NoError(t, err)

	out, err := satsolve.Solve(net, 3, dpll.New(nil), nil)
	require.NoError(t, err)
	require.Equal(t, 0, out.Length)
	require.Nil(t, out.Path)
}

func TestSolveAgreesWithBruteForce(t *testing.T) {
	b := graph.NewBuilder("agree")
	a, _ := b.AddNode("A", map[string]string{"shape": "square", "label": `4↑44`})
	m, _ := b.AddNode("M", map[string]string{"label": `4→4`})
	c, _ := b.AddNode("C", map[string]string{"label": `44↓4`})
	d, _ := b.AddNode("D", map[string]string{"shape": "invtriangle"})
	require.NoError(t, b.AddEdge(a, m))
	require.NoError(t, b.AddEdge(m, c))
	require.NoError(t, b.AddEdge(c, d))
	net, err := tunnel.New(b.Build())
	require.NoError(t, err)

	out, err := satsolve.Solve(net, 4, dpll.New(nil), nil)
	require.NoError(t, err)
	require.Equal(t, 3, out.Length)

	_, bfLength, err := bruteforce.Solve(net, 4, nil)
	require.NoError(t, err)
	require.Equal(t, bfLength, out.Length)
}
