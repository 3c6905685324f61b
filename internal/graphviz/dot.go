package graphviz

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gradweaver/internal/engine"
)

// Dot renders the subgraph reachable from root as a DOT digraph.
//
// Each Value becomes a box labeled with its data and gradient; each operand
// relation becomes an edge from operand to derived node, labeled with the
// operation symbol.
func Dot(root *engine.Value) string {
	var b strings.Builder
	b.WriteString("digraph {\n")
	b.WriteString("    node [shape=box]\n")
	b.WriteString("    rankdir=\"LR\"\n")

	order := root.Graph()
	for _, n := range order {
		fmt.Fprintf(&b, "    %q [label=\"data=%.4f grad=%.4f\"]\n", n.ID(), n.Data(), n.Grad())
	}
	for _, n := range order {
		for _, p := range n.Operands() {
			fmt.Fprintf(&b, "    %q -> %q [label=%q]\n", p.ID(), n.ID(), n.Op())
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// WriteFile renders root and writes the DOT text to path, creating parent
// directories as needed.
func WriteFile(path string, root *engine.Value) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("graphviz: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("graphviz: create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(Dot(root)), 0o644); err != nil {
		return fmt.Errorf("graphviz: write %s: %w", path, err)
	}
	return nil
}
