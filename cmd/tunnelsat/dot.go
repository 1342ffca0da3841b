package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcrouting/tunnelsat/colour"
	"github.com/arcrouting/tunnelsat/tunnel"
)

// writeTunnelDOT emits a Graphviz DOT file highlighting path's edges,
// under dir/name.dot. It is the DOT-emitter collaborator spec.md §1 places
// out of the core's scope, kept minimal since it exists only to make the
// CLI's -f flag runnable.
func writeTunnelDOT(net *tunnel.Network, path []tunnel.Step, dir, name string) error {
	onPath := make(map[[2]int]bool, len(path))
	for _, s := range path {
		onPath[[2]int{s.Source, s.Target}] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %q {\n", net.Name())
	for n := 0; n < net.NumNodes(); n++ {
		fmt.Fprintf(&b, "\t%q;\n", net.NodeName(n))
	}
	for u := 0; u < net.NumNodes(); u++ {
		for v := 0; v < net.NumNodes(); v++ {
			if !net.IsEdge(u, v) {
				continue
			}
			attr := ""
			if onPath[[2]int{u, v}] {
				attr = " [color=red, penwidth=2]"
			}
			fmt.Fprintf(&b, "\t%q -> %q%s;\n", net.NodeName(u), net.NodeName(v), attr)
		}
	}
	b.WriteString("}\n")

	return writeDOTFile(dir, name, b.String())
}

// writeColourDOT emits a Graphviz DOT file colouring each node by its
// assigned colour index (a named fill colour from colourName's palette).
func writeColourDOT(cg *colour.Graph, dir, name string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph {\n")
	for n := 0; n < cg.NumNodes(); n++ {
		fmt.Fprintf(&b, "\t%q [style=filled, fillcolor=%q];\n", cg.NodeName(n), colourName(cg.Colour(n)))
	}
	for u := 0; u < cg.NumNodes(); u++ {
		for v := 0; v < cg.NumNodes(); v++ {
			if cg.IsEdge(u, v) {
				fmt.Fprintf(&b, "\t%q -> %q;\n", cg.NodeName(u), cg.NodeName(v))
			}
		}
	}
	b.WriteString("}\n")

	return writeDOTFile(dir, name, b.String())
}

// colourName maps a colour index to a Graphviz-recognised colour name,
// cycling through a fixed palette for indices beyond it.
func colourName(idx int) string {
	palette := []string{"lightblue", "lightgreen", "lightpink", "khaki", "plum", "lightsalmon", "lightgrey"}
	if idx < 0 {
		return "white"
	}
	return palette[idx%len(palette)]
}

func writeDOTFile(dir, name, content string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tunnelsat: creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, name+".dot")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("tunnelsat: writing %s: %w", path, err)
	}
	return nil
}
