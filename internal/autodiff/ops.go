package autodiff

import (
	"fmt"
	"math"
)

// newOp allocates a result node. The caller installs the backward closure.
func newOp(data float64, op Op, parents ...*Value) *Value {
	return &Value{
		Data:    data,
		op:      op,
		parents: parents,
	}
}

// Add returns a new node a + b.
//
// Backward:
//   - d(a+b)/da = 1
//   - d(a+b)/db = 1
func (v *Value) Add(other *Value) *Value {
	out := newOp(v.Data+other.Data, OpAdd, v, other)
	out.backward = func() {
		v.Grad += out.Grad
		other.Grad += out.Grad
	}
	return out
}

// Mul returns a new node a * b.
//
// Backward:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
func (v *Value) Mul(other *Value) *Value {
	out := newOp(v.Data*other.Data, OpMul, v, other)
	out.backward = func() {
		v.Grad += other.Data * out.Grad
		other.Grad += v.Data * out.Grad
	}
	return out
}

// Pow returns a new node a**n. The exponent is a plain number, not a node.
//
// Backward: d(a**n)/da = n * a**(n-1).
//
// A negative base with a fractional exponent yields NaN, as math.Pow does.
func (v *Value) Pow(n float64) *Value {
	out := newOp(math.Pow(v.Data, n), OpPow, v)
	out.backward = func() {
		v.Grad += n * math.Pow(v.Data, n-1) * out.Grad
	}
	return out
}

// Neg returns -a, built as a * -1.
func (v *Value) Neg() *Value {
	return v.Mul(Scalar(-1))
}

// Sub returns a - b, built as a + (-b).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// Div returns a / b, built as a * b**-1.
// Dividing by a zero-valued node propagates ±Inf/NaN instead of failing.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}

// AddScalar returns v + c with c wrapped into a leaf.
func (v *Value) AddScalar(c float64) *Value {
	return v.Add(Scalar(c))
}

// SubScalar returns v - c with c wrapped into a leaf.
func (v *Value) SubScalar(c float64) *Value {
	return v.Sub(Scalar(c))
}

// MulScalar returns v * c with c wrapped into a leaf.
func (v *Value) MulScalar(c float64) *Value {
	return v.Mul(Scalar(c))
}

// DivScalar returns v / c with c wrapped into a leaf.
func (v *Value) DivScalar(c float64) *Value {
	return v.Div(Scalar(c))
}

// Sum adds the nodes left to right. An empty sum is a fresh leaf 0.
func Sum(vs ...*Value) *Value {
	if len(vs) == 0 {
		return Scalar(0)
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = acc.Add(v)
	}
	return acc
}

// Dot returns Σ a[i]*b[i]. It panics if the lengths differ.
func Dot(a, b []*Value) *Value {
	if len(a) != len(b) {
		panic(fmt.Sprintf("autodiff.Dot: length mismatch (%d != %d)", len(a), len(b)))
	}
	terms := make([]*Value, len(a))
	for i := range a {
		terms[i] = a[i].Mul(b[i])
	}
	return Sum(terms...)
}
