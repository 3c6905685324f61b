package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafConstruction(t *testing.T) {
	v := New(3.5)

	assert.Equal(t, 3.5, v.Data())
	assert.Equal(t, 0.0, v.Grad())
	assert.Empty(t, v.Operands())
	assert.Empty(t, v.Op())
}

func TestIdentityDistinctFromValue(t *testing.T) {
	a := New(1.0)
	b := New(1.0)

	// Two nodes with equal scalars are still distinct graph nodes.
	require.NotEqual(t, a.ID(), b.ID())
}

func TestAdd(t *testing.T) {
	a := New(2.0)
	b := New(3.0)
	y := a.Add(b)

	require.Equal(t, 5.0, y.Data())
	require.Equal(t, "+", y.Op())
	require.Equal(t, []*Value{a, b}, y.Operands())

	y.Backward()
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
}

func TestMul(t *testing.T) {
	a := New(2.0)
	b := New(-3.0)
	y := a.Mul(b)

	require.Equal(t, -6.0, y.Data())

	y.Backward()
	assert.Equal(t, b.Data(), a.Grad())
	assert.Equal(t, a.Data(), b.Grad())
}

func TestPow(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		exponent float64
		want     float64
		wantGrad float64
	}{
		{name: "integer exponent", base: 3.0, exponent: 4.0, want: 81.0, wantGrad: 108.0},
		{name: "fractional exponent", base: 4.0, exponent: 0.5, want: 2.0, wantGrad: 0.25},
		{name: "negative exponent", base: 2.0, exponent: -1.0, want: 0.5, wantGrad: -0.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := New(tc.base)
			y := a.Pow(tc.exponent)

			require.InDelta(t, tc.want, y.Data(), 1e-12)

			y.Backward()
			assert.InDelta(t, tc.wantGrad, a.Grad(), 1e-12)
		})
	}
}

func TestPowDomainErrorIsUnchecked(t *testing.T) {
	// 0^-1 is the caller's problem; the engine propagates IEEE semantics.
	a := New(0.0)
	y := a.Pow(-1)

	require.True(t, math.IsInf(y.Data(), 1))

	y.Backward()
	assert.True(t, math.IsInf(a.Grad(), -1))
}

func TestRelu(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		want     float64
		wantGrad float64
	}{
		{name: "positive passes through", in: 2.5, want: 2.5, wantGrad: 1.0},
		{name: "negative clamps", in: -1.5, want: 0.0, wantGrad: 0.0},
		{name: "zero boundary propagates nothing", in: 0.0, want: 0.0, wantGrad: 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := New(tc.in)
			y := a.Relu()

			require.Equal(t, tc.want, y.Data())

			y.Backward()
			assert.Equal(t, tc.wantGrad, a.Grad())
		})
	}
}

func TestNeg(t *testing.T) {
	a := New(-3.0)
	y := a.Neg()

	require.Equal(t, 3.0, y.Data())

	y.Backward()
	assert.Equal(t, -1.0, a.Grad())
}

func TestSub(t *testing.T) {
	a := New(5.0)
	b := New(3.0)
	y := a.Sub(b)

	require.Equal(t, 2.0, y.Data())

	y.Backward()
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, -1.0, b.Grad())
}

func TestDiv(t *testing.T) {
	a := New(8.0)
	b := New(4.0)
	y := a.Div(b)

	require.Equal(t, 2.0, y.Data())

	y.Backward()
	// d(a/b)/da = 1/b, d(a/b)/db = -a/b^2
	assert.InDelta(t, 0.25, a.Grad(), 1e-12)
	assert.InDelta(t, -0.5, b.Grad(), 1e-12)
}

func TestDivByZeroValuedNode(t *testing.T) {
	a := New(1.0)
	b := New(0.0)
	y := a.Div(b)

	assert.True(t, math.IsInf(y.Data(), 1))
}

func TestScalarForms(t *testing.T) {
	a := New(3.0)

	assert.Equal(t, 5.0, a.AddConst(2).Data())
	assert.Equal(t, 1.0, a.SubConst(2).Data())
	assert.Equal(t, 6.0, a.MulConst(2).Data())
	assert.Equal(t, 1.5, a.DivConst(2).Data())

	// Left-scalar forms are the same graph with an explicit leaf.
	assert.Equal(t, 5.0, New(2).Add(a).Data())
	assert.InDelta(t, 2.0/3.0, New(2).Div(a).Data(), 1e-12)
}

func TestScalarFormGradients(t *testing.T) {
	a := New(3.0)
	y := a.MulConst(4)

	y.Backward()
	assert.Equal(t, 4.0, a.Grad())
}

func TestSum(t *testing.T) {
	vs := []*Value{New(1.0), New(2.0), New(3.0)}
	total := Sum(vs)

	require.Equal(t, 6.0, total.Data())

	total.Backward()
	for _, v := range vs {
		assert.Equal(t, 1.0, v.Grad())
	}

	assert.Equal(t, 0.0, Sum(nil).Data())
}

func TestForwardValueIsStable(t *testing.T) {
	a := New(2.0)
	b := New(3.0)
	y := a.Mul(b)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 6.0, y.Data())
	}

	// Only Backward mutates gradients.
	assert.Equal(t, 0.0, a.Grad())
}

func TestSetDataDoesNotRecompute(t *testing.T) {
	a := New(2.0)
	y := a.MulConst(3)

	a.SetData(10.0)

	// Derived nodes keep their forward result; callers rebuild the graph.
	assert.Equal(t, 6.0, y.Data())
	assert.Equal(t, 10.0, a.Data())
}
