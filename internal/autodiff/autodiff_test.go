package autodiff_test

import (
	"math"
	"testing"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValue_Leaf tests leaf construction.
func TestValue_Leaf(t *testing.T) {
	v := autodiff.NewValue(3.5)

	assert.Equal(t, 3.5, v.Data)
	assert.Equal(t, 0.0, v.Grad)
	assert.Equal(t, autodiff.OpLeaf, v.Op())
	assert.True(t, v.IsLeaf())
	assert.Empty(t, v.Parents())
}

// TestValue_Add tests forward value and local gradients of addition.
func TestValue_Add(t *testing.T) {
	pairs := [][2]float64{{1, 2}, {-3, 0.5}, {0, 0}, {1e6, -1e-6}}

	for _, p := range pairs {
		a, b := autodiff.NewValue(p[0]), autodiff.NewValue(p[1])
		c := a.Add(b)
		c.Backward()

		assert.Equal(t, p[0]+p[1], c.Data)
		assert.Equal(t, autodiff.OpAdd, c.Op())
		assert.Equal(t, 1.0, a.Grad, "a.Grad for %v", p)
		assert.Equal(t, 1.0, b.Grad, "b.Grad for %v", p)
	}
}

// TestValue_Mul tests forward value and local gradients of multiplication.
func TestValue_Mul(t *testing.T) {
	pairs := [][2]float64{{2, 3}, {-4, 0.25}, {0, 7}}

	for _, p := range pairs {
		a, b := autodiff.NewValue(p[0]), autodiff.NewValue(p[1])
		c := a.Mul(b)
		c.Backward()

		assert.Equal(t, p[0]*p[1], c.Data)
		assert.Equal(t, b.Data, a.Grad)
		assert.Equal(t, a.Data, b.Grad)
	}
}

// TestValue_Pow tests d(x^n)/dx = n*x^(n-1).
func TestValue_Pow(t *testing.T) {
	x := autodiff.NewValue(3)
	y := x.Pow(2)
	y.Backward()

	assert.Equal(t, 9.0, y.Data)
	assert.Equal(t, 6.0, x.Grad)
	require.Len(t, y.Parents(), 1, "exponent must not become a graph node")
}

// TestValue_PowNegativeBaseFractional tests that undefined powers produce NaN.
func TestValue_PowNegativeBaseFractional(t *testing.T) {
	x := autodiff.NewValue(-2)
	y := x.Pow(0.5)

	assert.True(t, math.IsNaN(y.Data))
	assert.NotPanics(t, y.Backward)
}

// TestValue_NegSubDiv tests the composite operations.
func TestValue_NegSubDiv(t *testing.T) {
	a := autodiff.NewValue(6)
	b := autodiff.NewValue(4)

	neg := a.Neg()
	assert.Equal(t, -6.0, neg.Data)
	assert.Equal(t, autodiff.OpMul, neg.Op())

	sub := a.Sub(b)
	sub.Backward()
	assert.Equal(t, 2.0, sub.Data)
	assert.Equal(t, 1.0, a.Grad)
	assert.Equal(t, -1.0, b.Grad)

	a.Grad, b.Grad = 0, 0
	div := a.Div(b)
	div.Backward()
	assert.Equal(t, 1.5, div.Data)
	assert.InDelta(t, 1.0/4.0, a.Grad, 1e-12)
	assert.InDelta(t, -6.0/16.0, b.Grad, 1e-12)
}

// TestValue_DivByZero tests IEEE propagation instead of a panic.
func TestValue_DivByZero(t *testing.T) {
	a := autodiff.NewValue(1)
	b := autodiff.NewValue(0)

	c := a.Div(b)
	assert.True(t, math.IsInf(c.Data, 1))
	assert.NotPanics(t, c.Backward)
}

// TestValue_ScalarHelpers tests the literal-wrapping convenience forms.
func TestValue_ScalarHelpers(t *testing.T) {
	x := autodiff.NewValue(2)

	assert.Equal(t, 5.0, x.AddScalar(3).Data)
	assert.Equal(t, -1.0, x.SubScalar(3).Data)
	assert.Equal(t, 6.0, x.MulScalar(3).Data)
	assert.Equal(t, 0.5, x.DivScalar(4).Data)
}

// TestValue_Tanh tests tanh forward and 1 - tanh² gradient.
func TestValue_Tanh(t *testing.T) {
	x := autodiff.NewValue(0.5)
	y := x.Tanh()
	y.Backward()

	expected := (math.Exp(1) - 1) / (math.Exp(1) + 1)
	assert.InDelta(t, expected, y.Data, 1e-12)
	assert.InDelta(t, 1-expected*expected, x.Grad, 1e-12)
}

// TestValue_Activations tests the supplementary unary operations.
func TestValue_Activations(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(*autodiff.Value) *autodiff.Value
		x        float64
		wantData float64
		wantGrad float64
	}{
		{"exp", (*autodiff.Value).Exp, 1, math.E, math.E},
		{"log", (*autodiff.Value).Log, 2, math.Log(2), 0.5},
		{"relu positive", (*autodiff.Value).ReLU, 3, 3, 1},
		{"relu negative", (*autodiff.Value).ReLU, -3, 0, 0},
		{"sigmoid", (*autodiff.Value).Sigmoid, 0, 0.5, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := autodiff.NewValue(tt.x)
			y := tt.fn(x)
			y.Backward()

			assert.InDelta(t, tt.wantData, y.Data, 1e-12)
			assert.InDelta(t, tt.wantGrad, x.Grad, 1e-12)
		})
	}
}

// TestBackward_SharedNode tests c = a*a, where a is reached twice.
func TestBackward_SharedNode(t *testing.T) {
	a := autodiff.NewValue(3)
	c := a.Mul(a)
	c.Backward()

	assert.Equal(t, 9.0, c.Data)
	assert.Equal(t, 2*a.Data, a.Grad)
}

// TestBackward_Diamond tests fan-out through intermediate nodes.
//
//	b = a + a, c = b * b  =>  c = 4a², dc/da = 8a
func TestBackward_Diamond(t *testing.T) {
	a := autodiff.NewValue(-2)
	b := a.Add(a)
	c := b.Mul(b)
	c.Backward()

	assert.Equal(t, 16.0, c.Data)
	assert.Equal(t, 8*a.Data, a.Grad)
	assert.Equal(t, 2*b.Data, b.Grad)
}

// TestBackward_Accumulates tests that a second pass adds on top of stale grads.
func TestBackward_Accumulates(t *testing.T) {
	a := autodiff.NewValue(2)
	b := autodiff.NewValue(5)

	a.Mul(b).Backward()
	a.Mul(b).Backward()
	assert.Equal(t, 10.0, a.Grad, "gradients are not reset between passes")

	autodiff.ZeroGrad([]*autodiff.Value{a, b})
	a.Mul(b).Backward()
	assert.Equal(t, 5.0, a.Grad)
	assert.Equal(t, 2.0, b.Grad)
}

// TestBackward_EqualDataDistinctNodes tests identity-based visiting.
func TestBackward_EqualDataDistinctNodes(t *testing.T) {
	a := autodiff.NewValue(1)
	b := autodiff.NewValue(1)
	c := a.Add(b)
	c.Backward()

	assert.Equal(t, 1.0, a.Grad)
	assert.Equal(t, 1.0, b.Grad)
	assert.Len(t, autodiff.TopologicalOrder(c), 3)
}

// TestTopologicalOrder tests that parents precede children and root is last.
func TestTopologicalOrder(t *testing.T) {
	x := autodiff.NewValue(1)
	w := autodiff.NewValue(2)
	b := autodiff.NewValue(3)
	y := x.Mul(w).Add(b).Tanh()

	topo := autodiff.TopologicalOrder(y)
	require.Len(t, topo, 6)
	assert.Same(t, y, topo[len(topo)-1])

	pos := make(map[*autodiff.Value]int)
	for i, n := range topo {
		pos[n] = i
	}
	for _, n := range topo {
		for _, p := range n.Parents() {
			assert.Less(t, pos[p], pos[n])
		}
	}
}

// TestSumDot tests the vector helpers.
func TestSumDot(t *testing.T) {
	assert.Equal(t, 0.0, autodiff.Sum().Data)

	a := autodiff.Values(1, 2, 3)
	b := autodiff.Values(4, 5, 6)
	d := autodiff.Dot(a, b)
	d.Backward()

	assert.Equal(t, 32.0, d.Data)
	assert.Equal(t, []float64{4, 5, 6}, []float64{a[0].Grad, a[1].Grad, a[2].Grad})
	assert.Equal(t, []float64{1, 2, 3}, autodiff.Floats(a))

	assert.Panics(t, func() { autodiff.Dot(a, b[:2]) })
}

// TestOp_String tests op symbols.
func TestOp_String(t *testing.T) {
	assert.Equal(t, "+", autodiff.OpAdd.String())
	assert.Equal(t, "tanh", autodiff.OpTanh.String())
	assert.Equal(t, "", autodiff.OpLeaf.String())
	assert.Equal(t, "op(200)", autodiff.Op(200).String())
}
