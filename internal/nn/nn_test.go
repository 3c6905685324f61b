package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradweaver/internal/engine"
)

func TestNeuronForwardIsAffine(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := NewNeuron(rng, 2, false)

	params := n.Parameters() // [b, w0, w1]
	require.Len(t, params, 3)

	x := []*engine.Value{engine.New(1.0), engine.New(-2.0)}
	z := n.Forward(x)

	want := params[0].Data() + params[1].Data()*1.0 + params[2].Data()*(-2.0)
	assert.InDelta(t, want, z.Data(), 1e-12)
}

func TestNeuronReluClampsNegativeActivation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := NewNeuron(rng, 1, true)

	// Force a strongly negative pre-activation through the single weight.
	w := n.Parameters()[1]
	sign := 1.0
	if w.Data() > 0 {
		sign = -1.0
	}
	z := n.Forward([]*engine.Value{engine.New(sign * 1000)})
	assert.Equal(t, 0.0, z.Data())
}

func TestNeuronInputSizeMismatchPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := NewNeuron(rng, 2, true)

	assert.Panics(t, func() {
		n.Forward([]*engine.Value{engine.New(1.0)})
	})
}

func TestNeuronGradientsFlowToWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := NewNeuron(rng, 2, false)

	x := []*engine.Value{engine.New(3.0), engine.New(-4.0)}
	z := n.Forward(x)
	z.Backward()

	params := n.Parameters()
	assert.Equal(t, 1.0, params[0].Grad())          // d z / d b
	assert.Equal(t, 3.0, params[1].Grad())          // d z / d w0 = x0
	assert.Equal(t, -4.0, params[2].Grad())         // d z / d w1 = x1
	assert.Equal(t, params[1].Data(), x[0].Grad())  // d z / d x0 = w0
}

func TestLayerSizing(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	l := NewLayer(rng, 3, 4, true)

	out := l.Forward([]*engine.Value{engine.New(1), engine.New(2), engine.New(3)})
	assert.Len(t, out, 4)
	assert.Len(t, l.Parameters(), 4*(3+1))
}

func TestMLPSizingAndParameterCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := NewMLP(rng, 2, []int{16, 16, 1})

	assert.Equal(t, []int{2, 16, 16, 1}, m.Sizes())

	// 16*(2+1) + 16*(16+1) + 1*(16+1) parameters.
	assert.Len(t, m.Parameters(), 16*3+16*17+17)

	out := m.Forward([]*engine.Value{engine.New(0.5), engine.New(-0.5)})
	assert.Len(t, out, 1)
}

func TestMLPDeterministicUnderSeed(t *testing.T) {
	a := NewMLP(rand.New(rand.NewSource(42)), 2, []int{4, 1})
	b := NewMLP(rand.New(rand.NewSource(42)), 2, []int{4, 1})

	pa, pb := a.Parameters(), b.Parameters()
	require.Equal(t, len(pa), len(pb))
	for i := range pa {
		assert.Equal(t, pa[i].Data(), pb[i].Data())
	}
}

func TestMLPZeroGrad(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := NewMLP(rng, 2, []int{4, 1})

	out := m.Forward([]*engine.Value{engine.New(1.0), engine.New(2.0)})[0]
	out.Backward()

	touched := false
	for _, p := range m.Parameters() {
		if p.Grad() != 0 {
			touched = true
			break
		}
	}
	require.True(t, touched, "backward should reach some parameter")

	m.ZeroGrad()
	for _, p := range m.Parameters() {
		assert.Equal(t, 0.0, p.Grad())
	}
}
