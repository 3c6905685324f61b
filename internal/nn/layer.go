package nn

import (
	"math/rand"

	"gradweaver/internal/engine"
)

// Layer is a fully-connected set of neurons over the same input vector.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates nout neurons of nin inputs each.
func NewLayer(rng *rand.Rand, nin, nout int, nonlin bool) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(rng, nin, nonlin)
	}
	return &Layer{neurons: neurons}
}

// Forward runs every neuron over x.
func (l *Layer) Forward(x []*engine.Value) []*engine.Value {
	out := make([]*engine.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// Parameters returns the parameters of all neurons in layer order.
func (l *Layer) Parameters() []*engine.Value {
	var out []*engine.Value
	for _, n := range l.neurons {
		out = append(out, n.Parameters()...)
	}
	return out
}
