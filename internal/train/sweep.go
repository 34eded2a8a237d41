package train

import (
	"context"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/dataset"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/nn"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/parallel"
	"github.com/pkg/errors"
)

// SweepResult is the outcome of training one seed.
type SweepResult struct {
	Seed    int64   `json:"seed"`
	Loss    float64 `json:"loss"`    // MSE after training
	Best    float64 `json:"best"`    // Lowest training loss seen
	Correct int     `json:"correct"` // Samples whose prediction has the target's sign
	Samples int     `json:"samples"`
}

// Sweep trains one network per seed and reports how each ended up.
//
// Every job builds its own network, so no graph node is shared between
// goroutines. Results are in seed order.
func Sweep(ctx context.Context, netCfg nn.MLPConfig, cfg Config, d *dataset.Dataset,
	seeds []int64, steps int, pcfg parallel.Config) ([]SweepResult, error) {
	return parallel.Map(ctx, len(seeds), pcfg, func(ctx context.Context, i int) (SweepResult, error) {
		nc := netCfg
		nc.Seed = seeds[i]
		model, err := nn.NewMLPWithConfig(nc)
		if err != nil {
			return SweepResult{}, err
		}
		tr, err := NewTrainer(model, cfg, nil)
		if err != nil {
			return SweepResult{}, err
		}

		history, err := tr.Fit(ctx, d, steps)
		if err != nil {
			return SweepResult{}, errors.Wrapf(err, "seed %d", seeds[i])
		}
		loss, err := tr.Evaluate(d.Inputs(), d.Targets())
		if err != nil {
			return SweepResult{}, err
		}

		res := SweepResult{Seed: seeds[i], Loss: loss, Best: history.Best(), Samples: d.Len()}
		for _, s := range d.Samples {
			if (model.PredictFloats(s.Features).Data > 0) == (s.Target > 0) {
				res.Correct++
			}
		}
		return res, nil
	})
}
