package nn

import (
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/autodiff"
	"github.com/pkg/errors"
)

// MeanSquaredError computes Mean Squared Error loss.
//
// Loss = Σ(pred[i] - target[i])² / n
//
// The result is one node whose Backward populates the gradient of every
// parameter that contributed to any prediction. Targets are plain numbers.
//
// Example:
//
//	preds := []*autodiff.Value{model.PredictFloats(x0), model.PredictFloats(x1)}
//	loss, err := nn.MeanSquaredError([]float64{1, -1}, preds)
func MeanSquaredError(targets []float64, preds []*autodiff.Value) (*autodiff.Value, error) {
	sse, err := SumSquaredError(targets, preds)
	if err != nil {
		return nil, err
	}
	return sse.DivScalar(float64(len(preds))), nil
}

// SumSquaredError computes Σ(pred[i] - target[i])² without dividing by n.
//
// This is the loss classic micro-autodiff demos train with; its gradients
// are n times larger than MeanSquaredError's, so learning rates tuned for
// one do not carry over to the other.
func SumSquaredError(targets []float64, preds []*autodiff.Value) (*autodiff.Value, error) {
	if len(targets) != len(preds) {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"loss: %d targets for %d predictions", len(targets), len(preds))
	}
	if len(preds) == 0 {
		return nil, ErrEmptyBatch
	}

	terms := make([]*autodiff.Value, len(preds))
	for i, p := range preds {
		terms[i] = p.SubScalar(targets[i]).Pow(2)
	}
	return autodiff.Sum(terms...), nil
}
