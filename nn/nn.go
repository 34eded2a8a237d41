// Copyright 2025 Interactive Neural Networks. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/autodiff"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/nn"
)

// Module is anything that owns trainable parameters.
type Module = nn.Module

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// NamedParameter pairs a parameter node with its stable name.
type NamedParameter = nn.NamedParameter

// Errors

var (
	// ErrDimensionMismatch reports inputs or targets of the wrong length.
	ErrDimensionMismatch = nn.ErrDimensionMismatch

	// ErrEmptyBatch reports a loss over zero predictions.
	ErrEmptyBatch = nn.ErrEmptyBatch

	// ErrInvalidArchitecture reports a network that cannot be built.
	ErrInvalidArchitecture = nn.ErrInvalidArchitecture
)

// Activations

// Activation selects the nonlinearity applied to a neuron's weighted sum.
type Activation = nn.Activation

// Supported activations.
const (
	Tanh    = nn.Tanh
	Linear  = nn.Linear
	ReLU    = nn.ReLU
	Sigmoid = nn.Sigmoid
)

// ParseActivation maps a name to an Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Initialization

// Initializer draws an initial parameter value.
type Initializer = nn.Initializer

// Uniform draws from U(-bound, bound).
func Uniform(rng *rand.Rand, bound float64) Initializer {
	return nn.Uniform(rng, bound)
}

// Xavier draws from the Xavier/Glorot uniform distribution.
func Xavier(rng *rand.Rand) Initializer {
	return nn.Xavier(rng)
}

// Constant always returns v.
func Constant(v float64) Initializer {
	return nn.Constant(v)
}

// NewRand returns a random source seeded with seed (0 picks a random seed).
func NewRand(seed int64) *rand.Rand {
	return nn.NewRand(seed)
}

// Layers

// Neuron computes act(Σ x[i]*w[i] + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin weights.
func NewNeuron(nin int, act Activation, init Initializer) *Neuron {
	return nn.NewNeuron(nin, act, init)
}

// Layer is a row of neurons sharing the same inputs.
type Layer = nn.Layer

// NewLayer creates nout neurons with nin inputs each.
func NewLayer(nin, nout int, act Activation, init Initializer) *Layer {
	return nn.NewLayer(nin, nout, act, init)
}

// MLPConfig describes a multilayer perceptron.
type MLPConfig = nn.MLPConfig

// MLP is a stack of fully connected layers.
type MLP = nn.MLP

// NewMLP creates MLP(nin, sizes) with tanh everywhere and U(-1, 1) init.
//
// Example:
//
//	model := nn.NewMLP(2, []int{3, 3, 1}) // 25 parameters
func NewMLP(nin int, sizes []int) *MLP {
	return nn.NewMLP(nin, sizes)
}

// NewMLPWithConfig creates an MLP from cfg.
func NewMLPWithConfig(cfg MLPConfig) (*MLP, error) {
	return nn.NewMLPWithConfig(cfg)
}

// Loss functions

// MeanSquaredError returns Σ (pred - target)² / n.
func MeanSquaredError(targets []float64, preds []*autodiff.Value) (*autodiff.Value, error) {
	return nn.MeanSquaredError(targets, preds)
}

// SumSquaredError returns Σ (pred - target)².
func SumSquaredError(targets []float64, preds []*autodiff.Value) (*autodiff.Value, error) {
	return nn.SumSquaredError(targets, preds)
}
