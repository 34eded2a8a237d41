package optim_test

import (
	"math"
	"testing"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/autodiff"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/optim"
	"github.com/stretchr/testify/assert"
)

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	x := autodiff.NewValue(2.0)
	x.Grad = 1.0

	optimizer := optim.NewSGD([]*autodiff.Value{x}, optim.SGDConfig{LR: 0.1})
	optimizer.Step()

	// Expected: x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	assert.InDelta(t, 1.9, x.Data, 1e-12)
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	x := autodiff.NewValue(1.0)
	optimizer := optim.NewSGD([]*autodiff.Value{x}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// First step: v = 1, x = 1 - 0.1 = 0.9
	x.Grad = 1.0
	optimizer.Step()
	assert.InDelta(t, 0.9, x.Data, 1e-12)

	// Second step: v = 0.9*1 + 1 = 1.9, x = 0.9 - 0.19 = 0.71
	optimizer.Step()
	assert.InDelta(t, 0.71, x.Data, 1e-12)
}

// TestSGD_Defaults tests the default learning rate.
func TestSGD_Defaults(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, optim.DefaultSGDLR, optimizer.GetLR())

	optimizer.SetLR(0.2)
	assert.Equal(t, 0.2, optimizer.GetLR())
}

// TestSGD_ZeroGrad tests gradient clearing.
func TestSGD_ZeroGrad(t *testing.T) {
	params := autodiff.Values(1, 2, 3)
	for _, p := range params {
		p.Grad = 5
	}

	optim.NewSGD(params, optim.SGDConfig{}).ZeroGrad()
	for _, p := range params {
		assert.Zero(t, p.Grad)
	}
}

// TestSGD_MinimizesQuadratic tests f(x) = (x - 3)² converges to 3.
func TestSGD_MinimizesQuadratic(t *testing.T) {
	x := autodiff.NewValue(0)
	optimizer := optim.NewSGD([]*autodiff.Value{x}, optim.SGDConfig{LR: 0.1})

	for range 100 {
		optimizer.ZeroGrad()
		x.SubScalar(3).Pow(2).Backward()
		optimizer.Step()
	}

	assert.InDelta(t, 3.0, x.Data, 1e-6)
}

// TestAdam_FirstStep tests that the first Adam step moves by lr in the gradient sign.
func TestAdam_FirstStep(t *testing.T) {
	x := autodiff.NewValue(1.0)
	x.Grad = 0.5

	optimizer := optim.NewAdam([]*autodiff.Value{x}, optim.AdamConfig{LR: 0.1})
	optimizer.Step()

	// m_hat = g, v_hat = g², update = lr * g / (|g| + eps) ≈ lr
	assert.InDelta(t, 0.9, x.Data, 1e-6)
	assert.Equal(t, 1, optimizer.GetTimestep())
	assert.Equal(t, 0.1, optimizer.GetLR())
}

// TestAdam_MinimizesQuadratic tests f(x, y) = x² + (y + 1)².
func TestAdam_MinimizesQuadratic(t *testing.T) {
	x := autodiff.NewValue(2)
	y := autodiff.NewValue(2)
	optimizer := optim.NewAdam([]*autodiff.Value{x, y}, optim.AdamConfig{LR: 0.05})

	for range 1000 {
		optimizer.ZeroGrad()
		x.Pow(2).Add(y.AddScalar(1).Pow(2)).Backward()
		optimizer.Step()
	}

	assert.Less(t, math.Abs(x.Data), 1e-2)
	assert.Less(t, math.Abs(y.Data+1), 1e-2)
}

// TestOptimizerInterface verifies both optimizers satisfy Optimizer.
func TestOptimizerInterface(t *testing.T) {
	var _ optim.Optimizer = optim.NewSGD(nil, optim.SGDConfig{})
	var _ optim.Optimizer = optim.NewAdam(nil, optim.AdamConfig{})
}

func TestSetLR(t *testing.T) {
	for _, opt := range []optim.Optimizer{
		optim.NewSGD(nil, optim.SGDConfig{}),
		optim.NewAdam(nil, optim.AdamConfig{}),
	} {
		opt.SetLR(0.5)
		assert.Equal(t, 0.5, opt.GetLR())
	}
}
