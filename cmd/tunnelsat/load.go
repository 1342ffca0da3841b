package main

import (
	"fmt"
	"os"

	"github.com/arcrouting/tunnelsat/graph"
	"github.com/arcrouting/tunnelsat/graph/dotgraph"
)

// loadGraph opens path and parses it as a DOT-like graph via the dotgraph
// collaborator (spec.md §6's parser boundary).
func loadGraph(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tunnelsat: opening %s: %w", path, err)
	}
	defer f.Close()

	g, err := dotgraph.Load(f)
	if err != nil {
		return nil, fmt.Errorf("tunnelsat: parsing %s: %w", path, err)
	}
	return g, nil
}
