// Package optim implements gradient-descent optimizers for scalar parameters.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers hold the parameter nodes they were built with and read the
// gradient straight from each node's Grad field.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for step := range steps {
//	    optimizer.ZeroGrad()
//	    loss := computeLoss(model, data)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import (
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/autodiff"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next backward pass
//   - GetLR: Get current learning rate (for monitoring/scheduling)
//   - SetLR: Change the learning rate between steps
type Optimizer interface {
	// Step applies one update to every parameter using its current Grad.
	Step()

	// ZeroGrad sets every parameter's Grad to 0.
	//
	// Backward accumulates, so this must run before each backward pass.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR changes the learning rate used by later steps.
	SetLR(lr float64)
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

func zeroGrad(params []*autodiff.Value) {
	autodiff.ZeroGrad(params)
}
