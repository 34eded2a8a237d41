// Package train runs the zero → forward → loss → backward → update cycle.
//
// Backward accumulates into Grad, so calling it on a fresh graph without
// first zeroing the parameters silently adds stale gradients. Trainer.Step is
// the one place that sequences the phases, so callers cannot get the order
// wrong.
package train

import (
	"context"
	"io"
	"log"
	"math"
	"strings"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/autodiff"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/dataset"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/nn"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/optim"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// LossFunc builds a scalar loss node from targets and predictions.
type LossFunc func(targets []float64, preds []*autodiff.Value) (*autodiff.Value, error)

// Config holds training hyperparameters.
//
// Zero values are replaced by defaults in NewTrainer:
//   - LearningRate: 0.05
//   - Optimizer: "sgd"
//   - Loss: "mse"
//   - Steps: 200
//   - LogEvery: 0 (no progress logging)
type Config struct {
	LearningRate float64 `yaml:"learning_rate" json:"learning_rate"`
	Momentum     float64 `yaml:"momentum" json:"momentum"`   // SGD only
	Optimizer    string  `yaml:"optimizer" json:"optimizer"` // "sgd" or "adam"
	Loss         string  `yaml:"loss" json:"loss"`           // "mse" or "sse"
	Steps        int     `yaml:"steps" json:"steps"`         // Default step count for Fit
	LogEvery     int     `yaml:"log_every" json:"log_every"`
}

// DefaultConfig returns the configuration the explorer starts with.
func DefaultConfig() Config {
	return Config{
		LearningRate: optim.DefaultSGDLR,
		Optimizer:    "sgd",
		Loss:         "mse",
		Steps:        200,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.LearningRate == 0 {
		c.LearningRate = d.LearningRate
	}
	if c.Optimizer == "" {
		c.Optimizer = d.Optimizer
	}
	if c.Loss == "" {
		c.Loss = d.Loss
	}
	if c.Steps == 0 {
		c.Steps = d.Steps
	}
	return c
}

// ParseLoss maps a loss name to its function.
func ParseLoss(name string) (LossFunc, error) {
	switch strings.ToLower(name) {
	case "", "mse":
		return nn.MeanSquaredError, nil
	case "sse":
		return nn.SumSquaredError, nil
	}
	return nil, errors.Errorf("unknown loss %q", name)
}

// NewOptimizer builds the optimizer named in cfg over params.
func NewOptimizer(params []*autodiff.Value, cfg Config) (optim.Optimizer, error) {
	cfg = cfg.withDefaults()
	switch strings.ToLower(cfg.Optimizer) {
	case "sgd":
		return optim.NewSGD(params, optim.SGDConfig{LR: cfg.LearningRate, Momentum: cfg.Momentum}), nil
	case "adam":
		return optim.NewAdam(params, optim.AdamConfig{LR: cfg.LearningRate}), nil
	}
	return nil, errors.Errorf("unknown optimizer %q", cfg.Optimizer)
}

// StepResult summarizes one training step.
type StepResult struct {
	Step        int       `json:"step"`        // 1-based step number
	Loss        float64   `json:"loss"`        // Loss before the update
	Predictions []float64 `json:"predictions"` // Outputs before the update
}

// Trainer owns the training loop for one single-output MLP.
//
// A Trainer is not safe for concurrent use; callers serialize access to the
// model (the server holds a per-network mutex).
type Trainer struct {
	model     *nn.MLP
	optimizer optim.Optimizer
	loss      LossFunc
	cfg       Config
	step      int
	logger    *log.Logger
}

// NewTrainer creates a trainer for model.
//
// The model must have a single output neuron. A nil logger discards output.
func NewTrainer(model *nn.MLP, cfg Config, logger *log.Logger) (*Trainer, error) {
	cfg = cfg.withDefaults()

	if sizes := model.Sizes(); sizes[len(sizes)-1] != 1 {
		return nil, errors.Wrapf(nn.ErrDimensionMismatch,
			"trainer needs a single-output network, last layer has %d neurons", sizes[len(sizes)-1])
	}
	lossFn, err := ParseLoss(cfg.Loss)
	if err != nil {
		return nil, err
	}
	opt, err := NewOptimizer(model.Parameters(), cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Trainer{
		model:     model,
		optimizer: opt,
		loss:      lossFn,
		cfg:       cfg,
		logger:    logger,
	}, nil
}

// Model returns the trained network.
func (t *Trainer) Model() *nn.MLP {
	return t.model
}

// Optimizer returns the optimizer driving the updates.
func (t *Trainer) Optimizer() optim.Optimizer {
	return t.optimizer
}

// Config returns the effective configuration.
func (t *Trainer) Config() Config {
	return t.cfg
}

// SetLearningRate changes the learning rate for the following steps.
// Optimizer state such as momentum or Adam moments is kept.
func (t *Trainer) SetLearningRate(lr float64) error {
	if lr <= 0 || math.IsNaN(lr) || math.IsInf(lr, 0) {
		return errors.Errorf("learning rate must be positive and finite, got %g", lr)
	}
	t.optimizer.SetLR(lr)
	t.cfg.LearningRate = lr
	return nil
}

// Steps returns the number of completed steps.
func (t *Trainer) Steps() int {
	return t.step
}

// forward builds one prediction node per input on a fresh graph.
func (t *Trainer) forward(inputs [][]float64, targets []float64) ([]*autodiff.Value, error) {
	if len(inputs) != len(targets) {
		return nil, errors.Wrapf(nn.ErrDimensionMismatch,
			"%d inputs for %d targets", len(inputs), len(targets))
	}
	preds := make([]*autodiff.Value, len(inputs))
	for i, x := range inputs {
		if err := t.model.CheckInput(x); err != nil {
			return nil, errors.Wrapf(err, "sample %d", i)
		}
		preds[i] = t.model.PredictFloats(x)
	}
	return preds, nil
}

// Step runs one full-batch gradient step:
//  1. Zero every parameter gradient
//  2. Forward every input through a freshly built graph
//  3. Build the loss node
//  4. Backward from the loss
//  5. Let the optimizer update the parameters
func (t *Trainer) Step(inputs [][]float64, targets []float64) (StepResult, error) {
	t.optimizer.ZeroGrad()

	preds, err := t.forward(inputs, targets)
	if err != nil {
		return StepResult{}, err
	}
	loss, err := t.loss(targets, preds)
	if err != nil {
		return StepResult{}, err
	}

	loss.Backward()
	t.optimizer.Step()
	t.step++

	return StepResult{
		Step:        t.step,
		Loss:        loss.Data,
		Predictions: autodiff.Floats(preds),
	}, nil
}

// Evaluate returns the mean squared error on inputs without touching
// parameters or gradients.
func (t *Trainer) Evaluate(inputs [][]float64, targets []float64) (float64, error) {
	preds, err := t.forward(inputs, targets)
	if err != nil {
		return 0, err
	}
	loss, err := nn.MeanSquaredError(targets, preds)
	if err != nil {
		return 0, err
	}
	return loss.Data, nil
}

// History records the loss of every step of a Fit call.
type History struct {
	Losses []float64 `json:"losses"`
}

// Final returns the last recorded loss (0 if empty).
func (h History) Final() float64 {
	if len(h.Losses) == 0 {
		return 0
	}
	return h.Losses[len(h.Losses)-1]
}

// Best returns the lowest recorded loss (0 if empty).
func (h History) Best() float64 {
	if len(h.Losses) == 0 {
		return 0
	}
	return floats.Min(h.Losses)
}

// Mean returns the average recorded loss (0 if empty).
func (h History) Mean() float64 {
	if len(h.Losses) == 0 {
		return 0
	}
	return floats.Sum(h.Losses) / float64(len(h.Losses))
}

// Fit runs steps training steps over the whole dataset.
// steps <= 0 uses Config.Steps. Cancellation is checked between steps; the
// history of completed steps is returned together with ctx.Err().
func (t *Trainer) Fit(ctx context.Context, d *dataset.Dataset, steps int) (History, error) {
	if steps <= 0 {
		steps = t.cfg.Steps
	}
	inputs, targets := d.Inputs(), d.Targets()
	history := History{Losses: make([]float64, 0, steps)}

	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return history, err
		}
		res, err := t.Step(inputs, targets)
		if err != nil {
			return history, errors.Wrapf(err, "step %d", t.step+1)
		}
		history.Losses = append(history.Losses, res.Loss)

		if t.cfg.LogEvery > 0 && res.Step%t.cfg.LogEvery == 0 {
			t.logger.Printf("step %4d  loss=%.6f", res.Step, res.Loss)
		}
	}

	return history, nil
}
