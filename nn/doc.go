// Copyright 2025 Interactive Neural Networks. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neurons, layers and multilayer perceptrons built on
// scalar autodiff values.
//
// # Overview
//
// This package contains:
//   - Building blocks: Neuron, Layer, MLP
//   - Activations: Tanh (default), Linear, ReLU, Sigmoid
//   - Loss functions: MeanSquaredError, SumSquaredError
//   - Initialization: Uniform, Xavier, Constant
//
// # Basic Usage
//
//	model := nn.NewMLP(2, []int{3, 3, 1})
//
//	preds := make([]*autodiff.Value, len(inputs))
//	for i, x := range inputs {
//	    preds[i] = model.PredictFloats(x)
//	}
//	loss, err := nn.MeanSquaredError(targets, preds)
//	if err != nil {
//	    return err
//	}
//
//	model.ZeroGrad()
//	loss.Backward()
//
// # Parameters
//
// MLP.Parameters returns weights and biases layer by layer, neuron by neuron,
// each neuron's weights in input order followed by its bias. The order and the
// node identities never change for the life of the network, and every
// parameter carries a stable name such as "layers.0.neurons.1.w.0".
package nn
