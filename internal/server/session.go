package server

import (
	"net/http"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/dataset"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/nn"
	"github.com/pkg/errors"
)

// The methods below expect the caller to hold sess.mu.

func (sess *session) params() []ParamView {
	named := sess.model.NamedParameters()
	views := make([]ParamView, len(named))
	for i, p := range named {
		views[i] = ParamView{Index: i, Name: p.Name, Data: p.Value.Data, Grad: p.Value.Grad}
	}
	return views
}

func (sess *session) view() NetworkResponse {
	layers := sess.model.Layers()
	v := NetworkResponse{
		ID:      sess.id.String(),
		Created: sess.created,
		Inputs:  sess.model.NumInputs(),
		Layers:  sess.model.Sizes(),
		Output:  layers[len(layers)-1].Neurons()[0].Activation(),
		Steps:   sess.trainer.Steps(),
		Samples: sess.data.Len(),
		Params:  sess.params(),
	}
	if len(layers) > 1 {
		hidden := layers[0].Neurons()[0].Activation()
		v.Activation = &hidden
	}
	return v
}

// forward runs one input through the network and reads every neuron's sum
// and output off the fresh graph.
func (sess *session) forward(req ForwardRequest) (ForwardResponse, error) {
	if err := sess.model.CheckInput(req.Input); err != nil {
		return ForwardResponse{}, err
	}

	if req.Target != nil {
		sess.model.ZeroGrad()
	}
	outs := sess.model.ForwardFloats(req.Input)

	resp := ForwardResponse{Output: make([]float64, len(outs))}
	for i, o := range outs {
		resp.Output[i] = o.Data
	}
	for _, l := range sess.model.Layers() {
		views := make([]NeuronView, l.Size())
		for i, n := range l.Neurons() {
			views[i] = NeuronView{Sum: n.Sum().Data, Out: n.Out().Data}
		}
		resp.Layers = append(resp.Layers, views)
	}

	if req.Target != nil {
		loss, err := nn.MeanSquaredError([]float64{*req.Target}, outs)
		if err != nil {
			return ForwardResponse{}, err
		}
		loss.Backward()
		resp.Loss = &loss.Data
		resp.Params = sess.params()
	}
	return resp, nil
}

// train runs req.Steps steps, replacing the training set first when the
// request carries samples.
func (sess *session) train(r *http.Request, req TrainRequest) (TrainResponse, error) {
	if len(req.Samples) > 0 {
		d, err := dataset.New("custom", req.Samples)
		if err != nil {
			return TrainResponse{}, err
		}
		if d.Dim() != sess.model.NumInputs() {
			return TrainResponse{}, errors.Wrapf(nn.ErrDimensionMismatch,
				"samples have %d features, network expects %d", d.Dim(), sess.model.NumInputs())
		}
		sess.data = d
	}

	history, err := sess.trainer.Fit(r.Context(), sess.data, req.Steps)
	resp := TrainResponse{
		Steps:        sess.trainer.Steps(),
		LearningRate: sess.trainer.Optimizer().GetLR(),
		Losses:       history.Losses,
	}
	if err != nil {
		return resp, err
	}

	inputs, targets := sess.data.Inputs(), sess.data.Targets()
	if resp.Loss, err = sess.trainer.Evaluate(inputs, targets); err != nil {
		return resp, err
	}
	resp.Predictions = make([]float64, len(inputs))
	for i, x := range inputs {
		resp.Predictions[i] = sess.model.PredictFloats(x).Data
	}
	resp.Params = sess.params()
	return resp, nil
}
