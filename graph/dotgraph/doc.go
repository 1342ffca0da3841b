// Package dotgraph loads a DOT-like textual graph description into a
// graph.Graph. It is the textual parser spec.md §1 places outside the
// core's contract; the core only ever sees the resulting graph.Graph,
// never a DOT AST.
//
// Parsing is delegated to gonum.org/v1/gonum/graph/encoding/dot so this
// package only has to adapt gonum's attribute-setting callbacks into
// graph.Builder calls.
package dotgraph
