// Package cli wires the gradweaver commands.
//
// The binary surface is a thin client of the engine API: demo replays the
// reference expression, train drives the MLP training loop, and dot exports a
// computation graph for Graphviz rendering.
package cli
