package nn

import (
	"fmt"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/autodiff"
)

// NamedParameter pairs a parameter node with its stable name.
//
// Names follow the layout of the network:
//
//	layers.<layer>.neurons.<neuron>.w.<input>
//	layers.<layer>.neurons.<neuron>.b
type NamedParameter struct {
	Name  string
	Value *autodiff.Value
}

func weightName(layer, neuron, input int) string {
	return fmt.Sprintf("layers.%d.neurons.%d.w.%d", layer, neuron, input)
}

func biasName(layer, neuron int) string {
	return fmt.Sprintf("layers.%d.neurons.%d.b", layer, neuron)
}
