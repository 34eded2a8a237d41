// Package nn implements a multilayer perceptron on top of the scalar autodiff engine.
//
// This package provides the building blocks of the network shown in the
// visual editor:
//   - Module interface: anything owning trainable parameters
//   - Neuron: weight vector + bias + activation
//   - Layer: neurons sharing the same fan-in
//   - MLP: sequential stack of layers
//   - Loss functions: MeanSquaredError, SumSquaredError
//
// Every parameter is an *autodiff.Value leaf created once at construction.
// Each forward call builds a fresh expression graph on top of those leaves;
// the graph is dropped once the caller has consumed the gradients.
package nn

import (
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/autodiff"
)

// Module is the base interface for all network components.
//
// Parameters must return the same nodes, in the same order, on every call:
// optimizers and UI code address parameters by index.
type Module interface {
	Parameters() []*autodiff.Value
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	autodiff.ZeroGrad(m.Parameters())
}
