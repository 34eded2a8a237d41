package nn

import (
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/autodiff"
	"github.com/pkg/errors"
)

// Neuron computes act(Σ x[i]*w[i] + b).
//
// Weights and bias are leaf nodes created once by NewNeuron. Forward builds a
// new sub-graph on top of them and keeps the last weighted sum and output so
// the editor can show them next to the neuron.
//
// Example:
//
//	n := nn.NewNeuron(2, nn.Tanh, nn.Uniform(rng, 1))
//	out := n.Forward(autodiff.Values(1.0, -0.5))
//	fmt.Println(n.Sum().Data, out.Data)
type Neuron struct {
	weights []*autodiff.Value // One per input, in input order
	bias    *autodiff.Value
	act     Activation

	sum *autodiff.Value // Weighted sum from the last Forward
	out *autodiff.Value // Activation output from the last Forward
}

// NewNeuron creates a neuron with nin weights.
//
// Parameters:
//   - nin: Number of inputs (fan-in)
//   - act: Activation applied to the weighted sum
//   - init: Initializer for weights and bias
func NewNeuron(nin int, act Activation, init Initializer) *Neuron {
	weights := make([]*autodiff.Value, nin)
	for i := range weights {
		weights[i] = autodiff.NewValue(init(nin, 1))
	}
	return &Neuron{
		weights: weights,
		bias:    autodiff.NewValue(init(nin, 1)),
		act:     act,
	}
}

// Forward computes the neuron output for input x.
//
// It panics with an error wrapping ErrDimensionMismatch if len(x) differs
// from the number of weights.
func (n *Neuron) Forward(x []*autodiff.Value) *autodiff.Value {
	if len(x) != len(n.weights) {
		panic(errors.Wrapf(ErrDimensionMismatch,
			"Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(x)))
	}

	terms := make([]*autodiff.Value, 0, len(x)+1)
	for i, xi := range x {
		terms = append(terms, xi.Mul(n.weights[i]))
	}
	terms = append(terms, n.bias)

	n.sum = autodiff.Sum(terms...)
	n.out = n.act.Apply(n.sum)
	return n.out
}

// Sum returns the weighted-sum node built by the last Forward (nil before).
func (n *Neuron) Sum() *autodiff.Value {
	return n.sum
}

// Out returns the output node built by the last Forward (nil before).
func (n *Neuron) Out() *autodiff.Value {
	return n.out
}

// Weights returns the weight nodes in input order.
func (n *Neuron) Weights() []*autodiff.Value {
	return n.weights
}

// Bias returns the bias node.
func (n *Neuron) Bias() *autodiff.Value {
	return n.bias
}

// Activation returns the neuron's activation.
func (n *Neuron) Activation() Activation {
	return n.act
}

// NumInputs returns the fan-in.
func (n *Neuron) NumInputs() int {
	return len(n.weights)
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}
