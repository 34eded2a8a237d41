package server

import (
	"time"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/dataset"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/nn"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/train"
)

// CreateNetworkRequest is the payload for POST /api/networks.
//
// Omitted sections fall back to the server's configured defaults.
type CreateNetworkRequest struct {
	Network  *nn.MLPConfig    `json:"network,omitempty"`
	Training *train.Config    `json:"training,omitempty"`
	Samples  []dataset.Sample `json:"samples,omitempty"` // Training set; default kiki/bouba
}

// ParamView is one weight or bias as the editor shows it.
type ParamView struct {
	Index int     `json:"index"`
	Name  string  `json:"name"`
	Data  float64 `json:"data"`
	Grad  float64 `json:"grad"`
}

// NetworkResponse describes a network and all of its parameters.
type NetworkResponse struct {
	ID         string         `json:"id"`
	Created    time.Time      `json:"created"`
	Inputs     int            `json:"inputs"`
	Layers     []int          `json:"layers"`
	Activation *nn.Activation `json:"activation,omitempty"` // Hidden layers; absent with one layer
	Output     nn.Activation  `json:"output_activation"`
	Steps      int            `json:"steps"`
	Samples    int            `json:"samples"`
	Params     []ParamView    `json:"params"`
}

// ForwardRequest is the payload for POST /api/networks/{id}/forward.
//
// When Target is set the server also back-propagates the squared error
// against it, so the returned params carry fresh gradients.
type ForwardRequest struct {
	Input  []float64 `json:"input"`
	Target *float64  `json:"target,omitempty"`
}

// NeuronView holds the values a neuron produced in the last forward pass.
type NeuronView struct {
	Sum float64 `json:"sum"`
	Out float64 `json:"out"`
}

// ForwardResponse reports every neuron of every layer for one input.
type ForwardResponse struct {
	Layers [][]NeuronView `json:"layers"`
	Output []float64      `json:"output"`
	Loss   *float64       `json:"loss,omitempty"`
	Params []ParamView    `json:"params,omitempty"`
}

// TrainRequest controls how much work POST /api/networks/{id}/train performs.
//
// All fields are optional. Samples replaces the session's training set and
// LearningRate changes the rate for this and every later call.
type TrainRequest struct {
	Steps        int              `json:"steps"`
	LearningRate *float64         `json:"learning_rate,omitempty"`
	Samples      []dataset.Sample `json:"samples,omitempty"`
}

// TrainResponse summarizes a training call.
type TrainResponse struct {
	Steps        int         `json:"steps"` // Total steps taken by the session
	LearningRate float64     `json:"learning_rate"`
	Losses       []float64   `json:"losses"`
	Loss         float64     `json:"loss"` // MSE after the last update
	Predictions  []float64   `json:"predictions"`
	Params       []ParamView `json:"params"`
}

// SetParamRequest is the payload for PUT /api/networks/{id}/params/{index}.
type SetParamRequest struct {
	Data float64 `json:"data"`
}
