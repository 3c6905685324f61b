package nn

import (
	"fmt"
	"math/rand"

	"gradweaver/internal/engine"
)

// Neuron computes relu(w · x + b), or the raw affine result when nonlin is
// disabled (used for output layers).
type Neuron struct {
	w      []*engine.Value
	b      *engine.Value
	nonlin bool
}

// NewNeuron creates a neuron with nin inputs. Weights are drawn uniformly
// from [-1, 1); the bias starts at zero.
func NewNeuron(rng *rand.Rand, nin int, nonlin bool) *Neuron {
	w := make([]*engine.Value, nin)
	for i := range w {
		w[i] = engine.New(rng.Float64()*2 - 1)
	}
	return &Neuron{w: w, b: engine.New(0), nonlin: nonlin}
}

// Forward runs the neuron over one input vector. len(x) must equal the
// neuron's input size.
func (n *Neuron) Forward(x []*engine.Value) *engine.Value {
	if len(x) != len(n.w) {
		panic(fmt.Sprintf("nn: neuron expects %d inputs, got %d", len(n.w), len(x)))
	}

	act := n.b
	for i, wi := range n.w {
		act = act.Add(wi.Mul(x[i]))
	}
	if n.nonlin {
		return act.Relu()
	}
	return act
}

// Parameters returns the bias followed by the weights.
func (n *Neuron) Parameters() []*engine.Value {
	out := make([]*engine.Value, 0, len(n.w)+1)
	out = append(out, n.b)
	out = append(out, n.w...)
	return out
}

// String describes the neuron's activation and fan-in.
func (n *Neuron) String() string {
	name := "Linear"
	if n.nonlin {
		name = "ReLU"
	}
	return fmt.Sprintf("%s(%d)", name, len(n.w))
}
