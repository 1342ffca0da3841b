package tunnel_test

import (
	"testing"

	"github.com/arcrouting/tunnelsat/action"
	"github.com/arcrouting/tunnelsat/graph"
	"github.com/arcrouting/tunnelsat/tunnel"
	"github.com/stretchr/testify/require"
)

func trivialTransmit(t *testing.T) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder("trivial")
	a, err := b.AddNode("A", map[string]string{"shape": "square", "label": `4→4`})
	require.NoError(t, err)
	bb, err := b.AddNode("B", map[string]string{"shape": "invtriangle"})
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(a, bb))
	return b.Build()
}

func TestNewBasic(t *testing.T) {
	g := trivialTransmit(t)
	net, err := tunnel.New(g)
	require.NoError(t, err)
	require.Equal(t, 0, net.Initial())
	require.Equal(t, 1, net.Final())
	require.True(t, net.HasAction(0, action.Transmit4))
	require.False(t, net.HasAction(0, action.Transmit6))
	require.True(t, net.IsEdge(0, 1))
}

func TestNewMultiTokenLabel(t *testing.T) {
	b := graph.NewBuilder("g")
	n, err := b.AddNode("A", map[string]string{
		"shape": "square",
		"label": `4→4\n"4↑46\n"garbage`,
	})
	require.NoError(t, err)
	_, err = b.AddNode("B", map[string]string{"shape": "invtriangle"})
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(n, n+1))
	g := b.Build()

	net, err := tunnel.New(g)
	require.NoError(t, err)
	require.True(t, net.HasAction(0, action.Transmit4))
	require.True(t, net.HasAction(0, action.Push46))
	require.False(t, net.HasAction(0, action.Push44))
}

func TestNewMissingInitial(t *testing.T) {
	b := graph.NewBuilder("g")
	_, err := b.AddNode("A", map[string]string{"shape": "invtriangle"})
	require.NoError(t, err)
	g := b.Build()
	_, err = tunnel.New(g)
	require.ErrorIs(t, err, tunnel.ErrNoInitial)
}

func TestNewMissingFinal(t *testing.T) {
	b := graph.NewBuilder("g")
	_, err := b.AddNode("A", map[string]string{"shape": "square"})
	require.NoError(t, err)
	g := b.Build()
	_, err = tunnel.New(g)
	require.ErrorIs(t, err, tunnel.ErrNoFinal)
}

func TestNewAmbiguousShape(t *testing.T) {
	b := graph.NewBuilder("g")
	_, err := b.AddNode("A", map[string]string{"shape": "square"})
	require.NoError(t, err)
	_, err = b.AddNode("B", map[string]string{"shape": "square"})
	require.NoError(t, err)
	_, err = b.AddNode("C", map[string]string{"shape": "invtriangle"})
	require.NoError(t, err)
	g := b.Build()
	_, err = tunnel.New(g)
	require.ErrorIs(t, err, tunnel.ErrAmbiguousShape)
}

func TestSettersForTesting(t *testing.T) {
	g := trivialTransmit(t)
	net, err := tunnel.New(g)
	require.NoError(t, err)
	net.SetInitial(1)
	net.SetFinal(0)
	require.Equal(t, 1, net.Initial())
	require.Equal(t, 0, net.Final())
}

func TestFormatPath(t *testing.T) {
	g := trivialTransmit(t)
	net, err := tunnel.New(g)
	require.NoError(t, err)
	path := []tunnel.Step{{Source: 0, Target: 1, Action: action.Transmit4}}
	require.Equal(t, "A -(4→4)-> B", tunnel.FormatPath(net, path))
}
