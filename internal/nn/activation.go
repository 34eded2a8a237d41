package nn

import (
	"strings"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/autodiff"
	"github.com/pkg/errors"
)

// Activation selects the nonlinearity a neuron applies to its weighted sum.
//
// The zero value is Tanh, the activation used throughout the explorer.
type Activation uint8

const (
	Tanh    Activation = iota // tanh(x), default for every layer
	Linear                    // identity, for regression heads
	ReLU                      // max(0, x)
	Sigmoid                   // 1 / (1 + e^-x)
)

// Apply builds the activation node on top of x.
// Linear returns x itself so no extra node is created.
func (a Activation) Apply(x *autodiff.Value) *autodiff.Value {
	switch a {
	case Linear:
		return x
	case ReLU:
		return x.ReLU()
	case Sigmoid:
		return x.Sigmoid()
	default:
		return x.Tanh()
	}
}

// String returns the name accepted by ParseActivation.
func (a Activation) String() string {
	switch a {
	case Tanh:
		return "tanh"
	case Linear:
		return "linear"
	case ReLU:
		return "relu"
	case Sigmoid:
		return "sigmoid"
	}
	return "unknown"
}

// ParseActivation maps a name to an Activation. The empty string means Tanh.
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "tanh":
		return Tanh, nil
	case "linear", "identity", "none":
		return Linear, nil
	case "relu":
		return ReLU, nil
	case "sigmoid":
		return Sigmoid, nil
	}
	return Tanh, errors.Errorf("unknown activation %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Activation) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Activation) UnmarshalText(text []byte) error {
	parsed, err := ParseActivation(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
