package engine

import "github.com/google/uuid"

// Graph returns the topological order of the subgraph reachable from v:
// operands always appear before the nodes derived from them, and v itself is
// last. A node reachable through multiple paths appears exactly once,
// deduplicated by identity.
//
// The order is built by depth-first traversal with postorder emission, so it
// is deterministic for a given graph shape.
func (v *Value) Graph() []*Value {
	var order []*Value
	visited := make(map[uuid.UUID]struct{})

	var visit func(n *Value)
	visit = func(n *Value) {
		if _, ok := visited[n.id]; ok {
			return
		}
		visited[n.id] = struct{}{}
		for _, p := range n.prev {
			visit(p)
		}
		order = append(order, n)
	}
	visit(v)
	return order
}

// Backward computes gradients for every node reachable from v.
//
// It seeds v.grad with 1 (the derivative of the output with respect to
// itself), then invokes each node's propagation rule exactly once, walking the
// topological order in reverse: consumers before producers. This guarantees
// that when a node propagates, every reachable consumer has already added its
// contribution, so the node's own gradient is complete.
//
// Gradients are accumulated, never overwritten. Backward does not reset them:
// calling it again on an overlapping graph stacks onto prior results, and
// resetting via ZeroGrad between passes is the caller's responsibility.
func (v *Value) Backward() {
	order := v.Graph()

	v.grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		if order[i].propagate != nil {
			order[i].propagate()
		}
	}
}
