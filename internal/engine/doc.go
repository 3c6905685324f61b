// Package engine implements a scalar reverse-mode automatic differentiation
// engine.
//
// It is intentionally split into:
//   - Graph construction (Value): each operation is a factory that produces a
//     new node wired to its operands and carrying a local propagation rule.
//   - Gradient propagation (Backward): a deterministic reverse sweep over the
//     topological order of the reachable subgraph.
//
// The operand relation is acyclic by construction: an operation only ever
// creates a new node whose operands already exist. Gradients accumulate
// additively across every consumer of a node, so a value used in multiple
// places receives the sum of all downstream contributions.
package engine
