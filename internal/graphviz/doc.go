// Package graphviz renders a computation graph as Graphviz DOT text.
//
// The output is deterministic for a given graph: nodes are emitted in the
// engine's topological order and identified by node ID, never by map
// iteration order. Rendering is observational only and does not touch
// gradients or values.
package graphviz
