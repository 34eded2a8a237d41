package nn

import (
	"fmt"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/autodiff"
	"github.com/pkg/errors"
)

// MLPConfig describes a multilayer perceptron.
//
// Zero values are replaced by defaults in NewMLPWithConfig:
//   - Activation, OutputActivation: Tanh
//   - InitRange: 1 (weights and biases drawn from U(-1, 1))
//   - Seed: 0 means a random seed
type MLPConfig struct {
	Inputs           int        `yaml:"inputs" json:"inputs"`                       // Input dimensionality
	Layers           []int      `yaml:"layers" json:"layers"`                       // Neurons per layer
	Activation       Activation `yaml:"activation" json:"activation"`               // Hidden-layer activation
	OutputActivation Activation `yaml:"output_activation" json:"output_activation"` // Last-layer activation
	InitRange        float64    `yaml:"init_range" json:"init_range"`               // Uniform init bound
	Xavier           bool       `yaml:"xavier" json:"xavier"`                       // Use Xavier instead of uniform init
	Seed             int64      `yaml:"seed" json:"seed"`                           // RNG seed (0 = random)
}

// Validate checks the architecture.
func (c MLPConfig) Validate() error {
	if c.Inputs <= 0 {
		return errors.Wrapf(ErrInvalidArchitecture, "input dimension must be positive, got %d", c.Inputs)
	}
	if len(c.Layers) == 0 {
		return errors.Wrap(ErrInvalidArchitecture, "at least one layer is required")
	}
	for i, size := range c.Layers {
		if size <= 0 {
			return errors.Wrapf(ErrInvalidArchitecture, "layer %d must have a positive size, got %d", i, size)
		}
	}
	if c.InitRange < 0 {
		return errors.Errorf("init range must not be negative, got %g", c.InitRange)
	}
	return nil
}

// MLP is a sequential stack of fully connected layers.
//
// Each layer's output vector is the next layer's input. Layer i has fan-in
// equal to the size of layer i-1 (or Inputs for the first layer).
//
// Example:
//
//	model := nn.NewMLP(2, []int{3, 3, 1})
//	pred := model.Predict(autodiff.Values(0.5, -1.0))
//	loss, _ := nn.MeanSquaredError([]float64{1}, []*autodiff.Value{pred})
//	nn.ZeroGrad(model)
//	loss.Backward()
type MLP struct {
	nin    int
	layers []*Layer
	named  []NamedParameter // Built once; order defines parameter indices
}

// NewMLP creates an MLP with tanh activations and U(-1, 1) initialization.
// It panics if the architecture is invalid.
func NewMLP(nin int, sizes []int) *MLP {
	m, err := NewMLPWithConfig(MLPConfig{Inputs: nin, Layers: sizes})
	if err != nil {
		panic(fmt.Sprintf("NewMLP: %v", err))
	}
	return m
}

// NewMLPWithConfig creates an MLP from a configuration.
func NewMLPWithConfig(cfg MLPConfig) (*MLP, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.InitRange == 0 {
		cfg.InitRange = 1
	}

	rng := NewRand(cfg.Seed)
	init := Uniform(rng, cfg.InitRange)
	if cfg.Xavier {
		init = Xavier(rng)
	}

	m := &MLP{nin: cfg.Inputs}
	fanIn := cfg.Inputs
	for i, size := range cfg.Layers {
		act := cfg.Activation
		if i == len(cfg.Layers)-1 {
			act = cfg.OutputActivation
		}
		m.layers = append(m.layers, NewLayer(fanIn, size, act, init))
		fanIn = size
	}
	m.indexParameters()

	return m, nil
}

// indexParameters names and labels every parameter in stable order.
func (m *MLP) indexParameters() {
	m.named = m.named[:0]
	for li, l := range m.layers {
		for ni, n := range l.neurons {
			for wi, w := range n.weights {
				w.Label = weightName(li, ni, wi)
				m.named = append(m.named, NamedParameter{Name: w.Label, Value: w})
			}
			n.bias.Label = biasName(li, ni)
			m.named = append(m.named, NamedParameter{Name: n.bias.Label, Value: n.bias})
		}
	}
}

// CheckInput reports whether x has the input dimensionality of the network.
func (m *MLP) CheckInput(x []float64) error {
	if len(x) != m.nin {
		return errors.Wrapf(ErrDimensionMismatch, "expected %d inputs, got %d", m.nin, len(x))
	}
	return nil
}

// Forward threads x through every layer and returns the last layer's outputs.
//
// A new graph is built on every call. It panics with an error wrapping
// ErrDimensionMismatch if len(x) is not the input dimensionality.
func (m *MLP) Forward(x []*autodiff.Value) []*autodiff.Value {
	if len(x) != m.nin {
		panic(errors.Wrapf(ErrDimensionMismatch, "MLP.Forward: expected %d inputs, got %d", m.nin, len(x)))
	}
	out := x
	for _, l := range m.layers {
		out = l.Forward(out)
	}
	return out
}

// ForwardFloats wraps x into fresh input leaves and calls Forward.
func (m *MLP) ForwardFloats(x []float64) []*autodiff.Value {
	return m.Forward(autodiff.Values(x...))
}

// Predict returns the single output of a network whose last layer has one
// neuron. It panics for wider output layers.
func (m *MLP) Predict(x []*autodiff.Value) *autodiff.Value {
	if last := m.layers[len(m.layers)-1]; last.Size() != 1 {
		panic(errors.Wrapf(ErrDimensionMismatch, "MLP.Predict: last layer has %d outputs, want 1", last.Size()))
	}
	return m.Forward(x)[0]
}

// PredictFloats is Predict over plain numbers.
func (m *MLP) PredictFloats(x []float64) *autodiff.Value {
	return m.Predict(autodiff.Values(x...))
}

// Layers returns the layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// NumInputs returns the input dimensionality.
func (m *MLP) NumInputs() int {
	return m.nin
}

// Sizes returns the number of neurons in each layer.
func (m *MLP) Sizes() []int {
	sizes := make([]int, len(m.layers))
	for i, l := range m.layers {
		sizes[i] = l.Size()
	}
	return sizes
}

// Parameters returns every weight and bias node.
//
// Order is layer by layer, neuron by neuron, weights in input order then the
// bias. The slice is fresh on each call; the nodes are the same every time.
func (m *MLP) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, len(m.named))
	for i, p := range m.named {
		params[i] = p.Value
	}
	return params
}

// NamedParameters returns the parameters with their names, in Parameters order.
func (m *MLP) NamedParameters() []NamedParameter {
	return append([]NamedParameter(nil), m.named...)
}

// NumParameters returns the number of weights and biases.
func (m *MLP) NumParameters() int {
	return len(m.named)
}

// ZeroGrad resets every parameter gradient.
func (m *MLP) ZeroGrad() {
	for _, p := range m.named {
		p.Value.Grad = 0
	}
}

// SetParameter overwrites the value of the parameter at index i.
// The editor uses it when the user drags a weight.
func (m *MLP) SetParameter(i int, data float64) error {
	if i < 0 || i >= len(m.named) {
		return errors.Errorf("parameter index %d out of range [0, %d)", i, len(m.named))
	}
	m.named[i].Value.Data = data
	return nil
}

// StateDict returns parameter values keyed by parameter name.
func (m *MLP) StateDict() map[string]float64 {
	state := make(map[string]float64, len(m.named))
	for _, p := range m.named {
		state[p.Name] = p.Value.Data
	}
	return state
}

// LoadStateDict copies values into the parameters.
//
// Every parameter must be present; nothing is modified if one is missing.
func (m *MLP) LoadStateDict(state map[string]float64) error {
	for _, p := range m.named {
		if _, ok := state[p.Name]; !ok {
			return errors.Errorf("missing %s in state dict", p.Name)
		}
	}
	for _, p := range m.named {
		p.Value.Data = state[p.Name]
	}
	return nil
}
