// Command tunnelsat is the CLI front-end for the Tunnel-routing and
// Colouring reachability toolkit: it loads a DOT-like graph, runs the
// brute-force search and/or the SAT reduction, and reports (or dumps) the
// result. It is a collaborator per spec.md §6, not part of the core
// decision procedures.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
