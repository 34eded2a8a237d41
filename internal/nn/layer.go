package nn

import (
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/autodiff"
)

// Layer is a fully connected layer: every neuron sees the whole input vector.
type Layer struct {
	neurons []*Neuron
	nin     int
}

// NewLayer creates nout neurons, each with nin inputs.
func NewLayer(nin, nout int, act Activation, init Initializer) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		// Fan-out is the layer width for shape-aware initializers.
		neurons[i] = NewNeuron(nin, act, func(fanIn, _ int) float64 {
			return init(fanIn, nout)
		})
	}
	return &Layer{
		neurons: neurons,
		nin:     nin,
	}
}

// Forward maps x through every neuron.
//
// The result always has one node per neuron, including single-neuron layers;
// use MLP.Predict for the scalar form of a one-output network.
func (l *Layer) Forward(x []*autodiff.Value) []*autodiff.Value {
	out := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// Size returns the number of neurons.
func (l *Layer) Size() int {
	return len(l.neurons)
}

// NumInputs returns the fan-in shared by every neuron.
func (l *Layer) NumInputs() int {
	return l.nin
}

// Parameters returns the parameters of each neuron in order.
func (l *Layer) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(l.neurons)*(l.nin+1))
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}
