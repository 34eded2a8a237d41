package autodiff

import "math"

// Tanh applies the hyperbolic tangent: (e^2x - 1) / (e^2x + 1).
//
// Backward: d(tanh(x))/dx = 1 - tanh²(x), computed from the stored output.
func (v *Value) Tanh() *Value {
	t := math.Tanh(v.Data)
	out := newOp(t, OpTanh, v)
	out.backward = func() {
		v.Grad += (1 - t*t) * out.Grad
	}
	return out
}

// Exp returns e**x.
func (v *Value) Exp() *Value {
	e := math.Exp(v.Data)
	out := newOp(e, OpExp, v)
	out.backward = func() {
		v.Grad += e * out.Grad
	}
	return out
}

// Log returns the natural logarithm. Non-positive inputs follow math.Log.
func (v *Value) Log() *Value {
	out := newOp(math.Log(v.Data), OpLog, v)
	out.backward = func() {
		v.Grad += out.Grad / v.Data
	}
	return out
}

// ReLU returns max(0, x). The gradient at exactly 0 is taken as 0.
func (v *Value) ReLU() *Value {
	data, local := 0.0, 0.0
	if v.Data > 0 {
		data, local = v.Data, 1
	}
	out := newOp(data, OpReLU, v)
	out.backward = func() {
		v.Grad += local * out.Grad
	}
	return out
}

// Sigmoid returns 1 / (1 + e**-x).
func (v *Value) Sigmoid() *Value {
	s := 1 / (1 + math.Exp(-v.Data))
	out := newOp(s, OpSigmoid, v)
	out.backward = func() {
		v.Grad += s * (1 - s) * out.Grad
	}
	return out
}
