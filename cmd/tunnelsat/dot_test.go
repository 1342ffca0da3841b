package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcrouting/tunnelsat/action"
	"github.com/arcrouting/tunnelsat/colour"
	"github.com/arcrouting/tunnelsat/graph"
	"github.com/arcrouting/tunnelsat/tunnel"
	"github.com/stretchr/testify/require"
)

func TestColourNameCycles(t *testing.T) {
	require.Equal(t, "white", colourName(colour.Unset))
	require.NotEqual(t, colourName(0), colourName(1))
	require.Equal(t, colourName(0), colourName(7))
}

func TestWriteTunnelDOT(t *testing.T) {
	b := graph.NewBuilder("x")
	a, _ := b.AddNode("A", map[string]string{"shape": "square", "label": `4→4`})
	bb, _ := b.AddNode("B", map[string]string{"shape": "invtriangle"})
	require.NoError(t, b.AddEdge(a, bb))
	net, err := tunnel.New(b.Build())
	require.NoError(t, err)

	dir := t.TempDir()
	path := []tunnel.Step{{Source: a, Target: bb, Action: action.Transmit4}}
	require.NoError(t, writeTunnelDOT(net, path, dir, "out"))

	data, err := os.ReadFile(filepath.Join(dir, "out.dot"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"A" -> "B"`)
	require.Contains(t, string(data), "color=red")
}

func TestWriteColourDOT(t *testing.T) {
	b := graph.NewBuilder("x")
	a, _ := b.AddNode("A", nil)
	bb, _ := b.AddNode("B", nil)
	require.NoError(t, b.AddEdge(a, bb))
	cg := colour.New(b.Build())
	cg.SetColour(a, 0)
	cg.SetColour(bb, 1)

	dir := t.TempDir()
	require.NoError(t, writeColourDOT(cg, dir, "out"))

	data, err := os.ReadFile(filepath.Join(dir, "out.dot"))
	require.NoError(t, err)
	require.Contains(t, string(data), "lightblue")
	require.Contains(t, string(data), "lightgreen")
}
