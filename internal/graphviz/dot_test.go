package graphviz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradweaver/internal/engine"
)

func buildSmallGraph() *engine.Value {
	a := engine.New(1.0)
	b := engine.New(2.0)
	return a.Add(b).Pow(2)
}

func TestDotStructure(t *testing.T) {
	root := buildSmallGraph()
	out := Dot(root)

	require.True(t, strings.HasPrefix(out, "digraph {"))
	require.True(t, strings.HasSuffix(out, "}\n"))

	// Nodes: a, b, a+b, pow result. Edges: a->sum, b->sum, sum->pow.
	assert.Equal(t, 4, strings.Count(out, "[label=\"data="))
	assert.Equal(t, 3, strings.Count(out, " -> "))
	assert.Contains(t, out, "label=\"+\"")
	assert.Contains(t, out, "label=\"^\"")
}

func TestDotIsDeterministicPerGraph(t *testing.T) {
	root := buildSmallGraph()

	first := Dot(root)
	second := Dot(root)
	assert.Equal(t, first, second)
}

func TestDotIncludesGradientsAfterBackward(t *testing.T) {
	root := buildSmallGraph()
	root.Backward()

	out := Dot(root)
	assert.Contains(t, out, "grad=1.0000")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plots", "graph.dot")

	root := buildSmallGraph()
	require.NoError(t, WriteFile(path, root))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Dot(root), string(data))
}

func TestWriteFileRequiresPath(t *testing.T) {
	assert.Error(t, WriteFile("  ", buildSmallGraph()))
}
