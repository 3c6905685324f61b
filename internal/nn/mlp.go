package nn

import (
	"math/rand"

	"gradweaver/internal/engine"
)

// MLP is a multilayer perceptron: ReLU on every layer except the last, so
// the output stays an unbounded score.
type MLP struct {
	layers []*Layer
	sizes  []int // [nin, hidden..., nout]
}

// NewMLP creates a network with the given input size and layer widths.
func NewMLP(rng *rand.Rand, nin int, nouts []int) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range nouts {
		nonlin := i != len(nouts)-1
		layers[i] = NewLayer(rng, sizes[i], sizes[i+1], nonlin)
	}
	return &MLP{layers: layers, sizes: sizes}
}

// Forward runs the input vector through every layer.
func (m *MLP) Forward(x []*engine.Value) []*engine.Value {
	for _, l := range m.layers {
		x = l.Forward(x)
	}
	return x
}

// Parameters returns all trainable nodes in layer order.
func (m *MLP) Parameters() []*engine.Value {
	var out []*engine.Value
	for _, l := range m.layers {
		out = append(out, l.Parameters()...)
	}
	return out
}

// ZeroGrad resets every parameter gradient. Must be called between backward
// passes; Backward itself only ever accumulates.
func (m *MLP) ZeroGrad() {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// Sizes returns the layer sizing [nin, hidden..., nout].
func (m *MLP) Sizes() []int {
	out := make([]int, len(m.sizes))
	copy(out, m.sizes)
	return out
}
