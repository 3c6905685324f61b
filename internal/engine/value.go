package engine

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Value is a node in the computation graph: a scalar result, its accumulated
// gradient, the operands it was derived from, and the local propagation rule.
//
// A Value is created once, either as a leaf (New) or as the result of an
// operation. After creation its data and operand list do not change; the only
// mutations are gradient accumulation during Backward, ZeroGrad, and SetData
// (the documented parameter-update exception used by optimizers).
//
// Values are shared: the same node may be an operand of several downstream
// nodes. The graph is a DAG, never a tree, which is why identity (ID) is
// distinct from data equality.
type Value struct {
	data float64
	grad float64
	id   uuid.UUID

	// prev holds the operands in operation order: prev[0] is always the
	// base/left operand of asymmetric operations.
	prev []*Value
	op   string

	// propagate distributes this node's accumulated gradient to its operands.
	// Nil for leaves. It reads only this node's grad and the operands' data,
	// and writes only the operands' grad, always via +=.
	propagate func()
}

// New creates a leaf node holding the given scalar.
func New(data float64) *Value {
	return &Value{data: data, id: uuid.New()}
}

// Data returns the node's current scalar result.
func (v *Value) Data() float64 { return v.data }

// Grad returns the accumulated gradient of the last Backward root with
// respect to this node. Zero until a backward pass has reached the node.
func (v *Value) Grad() float64 { return v.grad }

// ID returns the node's stable identity, distinct from its value.
func (v *Value) ID() uuid.UUID { return v.id }

// Op returns the symbol of the operation that produced this node, or "" for
// leaves.
func (v *Value) Op() string { return v.op }

// Operands returns the nodes this node was derived from, in operation order.
func (v *Value) Operands() []*Value {
	out := make([]*Value, len(v.prev))
	copy(out, v.prev)
	return out
}

// SetData overwrites the node's scalar in place.
//
// This is the explicit exception to value immutability: optimizers update
// leaf parameters between passes. Derived nodes are not recomputed; callers
// rebuild the graph for the next forward pass.
func (v *Value) SetData(data float64) { v.data = data }

// ZeroGrad resets the node's gradient accumulator.
//
// Backward never resets gradients itself; running it twice without ZeroGrad
// accumulates on top of prior results.
func (v *Value) ZeroGrad() { v.grad = 0 }

// String formats the node as data/grad for debugging.
func (v *Value) String() string {
	return fmt.Sprintf("data=%v grad=%v", v.data, v.grad)
}

// Add returns a new node computing v + w.
func (v *Value) Add(w *Value) *Value {
	out := &Value{
		data: v.data + w.data,
		id:   uuid.New(),
		prev: []*Value{v, w},
		op:   "+",
	}
	out.propagate = func() {
		v.grad += out.grad
		w.grad += out.grad
	}
	return out
}

// Mul returns a new node computing v * w.
func (v *Value) Mul(w *Value) *Value {
	out := &Value{
		data: v.data * w.data,
		id:   uuid.New(),
		prev: []*Value{v, w},
		op:   "*",
	}
	out.propagate = func() {
		v.grad += w.data * out.grad
		w.grad += v.data * out.grad
	}
	return out
}

// Pow returns a new node computing v raised to a constant exponent.
//
// The exponent is not differentiated. Semantics follow math.Pow, including
// the unchecked domain cases (0 raised to a negative exponent yields Inf).
func (v *Value) Pow(exponent float64) *Value {
	out := &Value{
		data: math.Pow(v.data, exponent),
		id:   uuid.New(),
		prev: []*Value{v},
		op:   "^",
	}
	out.propagate = func() {
		v.grad += exponent * math.Pow(v.data, exponent-1) * out.grad
	}
	return out
}

// Relu returns a new node computing max(0, v).
//
// At exactly zero the propagated gradient is zero (strict > 0 test).
func (v *Value) Relu() *Value {
	out := &Value{
		data: math.Max(0, v.data),
		id:   uuid.New(),
		prev: []*Value{v},
		op:   "ReLU",
	}
	out.propagate = func() {
		if v.data > 0 {
			v.grad += out.grad
		}
	}
	return out
}

// Everything below is composed from the four primitives plus leaf wrapping:
// negation is multiply-by-(-1), subtraction adds a negation, division
// multiplies by Pow(-1), and scalar operands are promoted to leaves. Only
// add, mul, pow and relu carry propagation rules.

// Neg returns a new node computing -v.
func (v *Value) Neg() *Value { return v.MulConst(-1) }

// Sub returns a new node computing v - w.
func (v *Value) Sub(w *Value) *Value { return v.Add(w.Neg()) }

// Div returns a new node computing v / w.
//
// A zero-valued divisor follows IEEE semantics and yields Inf or NaN.
func (v *Value) Div(w *Value) *Value { return v.Mul(w.Pow(-1)) }

// AddConst returns a new node computing v + c; c is promoted to a leaf.
// Addition commutes, so this also covers the c + v form.
func (v *Value) AddConst(c float64) *Value { return v.Add(New(c)) }

// SubConst returns a new node computing v - c.
func (v *Value) SubConst(c float64) *Value { return v.Sub(New(c)) }

// MulConst returns a new node computing v * c; c is promoted to a leaf.
// Multiplication commutes, so this also covers the c * v form.
func (v *Value) MulConst(c float64) *Value { return v.Mul(New(c)) }

// DivConst returns a new node computing v / c.
func (v *Value) DivConst(c float64) *Value { return v.Div(New(c)) }

// Sum folds vs with Add; an empty slice yields a zero leaf.
func Sum(vs []*Value) *Value {
	if len(vs) == 0 {
		return New(0)
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = acc.Add(v)
	}
	return acc
}
