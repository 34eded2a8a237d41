package train_test

import (
	"context"
	"testing"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/dataset"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/nn"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/parallel"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/train"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep(t *testing.T) {
	seeds := []int64{1, 2, 3, 4, 5, 6}
	netCfg := nn.MLPConfig{Inputs: 2, Layers: []int{3, 3, 1}}

	results, err := train.Sweep(context.Background(), netCfg, train.DefaultConfig(),
		dataset.KikiBouba(), seeds, 200, parallel.Config{Workers: 3})
	require.NoError(t, err)
	require.Len(t, results, len(seeds))

	for i, r := range results {
		assert.Equal(t, seeds[i], r.Seed)
		assert.Less(t, r.Loss, 0.1, "seed %d", r.Seed)
		assert.Equal(t, 8, r.Correct, "seed %d", r.Seed)
		assert.Equal(t, 8, r.Samples)
	}
}

// TestSweep_Deterministic checks that concurrent runs match a sequential run.
func TestSweep_Deterministic(t *testing.T) {
	seeds := []int64{11, 12, 13, 14}
	netCfg := nn.MLPConfig{Inputs: 2, Layers: []int{2, 1}}
	d := dataset.KikiBouba()

	seq, err := train.Sweep(context.Background(), netCfg, train.DefaultConfig(), d, seeds, 20, parallel.Config{Workers: 1})
	require.NoError(t, err)
	par, err := train.Sweep(context.Background(), netCfg, train.DefaultConfig(), d, seeds, 20, parallel.Config{Workers: 4})
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestSweep_InvalidNetwork(t *testing.T) {
	_, err := train.Sweep(context.Background(), nn.MLPConfig{Inputs: 2, Layers: []int{2}},
		train.DefaultConfig(), dataset.KikiBouba(), []int64{1}, 10, parallel.DefaultConfig())
	assert.ErrorIs(t, err, nn.ErrDimensionMismatch)
}
