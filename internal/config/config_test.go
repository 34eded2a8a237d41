package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/config"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2, cfg.Network.Inputs)
	assert.Equal(t, []int{3, 3, 1}, cfg.Network.Layers)
	assert.Equal(t, 0.05, cfg.Training.LearningRate)
	assert.Equal(t, "sgd", cfg.Training.Optimizer)
	assert.Equal(t, "mse", cfg.Training.Loss)
	assert.Equal(t, config.DefaultAddr, cfg.Server.Addr)
}

func TestDecode(t *testing.T) {
	src := `
network:
  inputs: 2
  layers: [4, 1]
  activation: relu
  seed: 7
training:
  learning_rate: 0.1
  optimizer: adam
server:
  addr: "127.0.0.1:9000"
`
	cfg, err := config.Decode(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []int{4, 1}, cfg.Network.Layers)
	assert.Equal(t, nn.ReLU, cfg.Network.Activation)
	assert.Equal(t, nn.Tanh, cfg.Network.OutputActivation)
	assert.Equal(t, int64(7), cfg.Network.Seed)
	assert.Equal(t, 0.1, cfg.Training.LearningRate)
	assert.Equal(t, "adam", cfg.Training.Optimizer)
	assert.Equal(t, "mse", cfg.Training.Loss, "missing keys keep defaults")
	assert.Equal(t, 200, cfg.Training.Steps)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown key", "netwrok:\n  inputs: 2\n"},
		{"bad activation", "network:\n  activation: softmax\n"},
		{"no layers", "network:\n  layers: []\n"},
		{"multi output", "network:\n  layers: [3, 2]\n"},
		{"negative lr", "training:\n  learning_rate: -1\n"},
		{"bad momentum", "training:\n  momentum: 1.5\n"},
		{"bad loss", "training:\n  loss: hinge\n"},
		{"bad optimizer", "training:\n  optimizer: rmsprop\n"},
		{"empty addr", "server:\n  addr: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "explorer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("training:\n  steps: 50\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Training.Steps)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDataset(t *testing.T) {
	cfg := config.Default()
	d, err := cfg.LoadDataset()
	require.NoError(t, err)
	assert.Equal(t, 8, d.Len())

	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.yaml")
	src := `
name: shapes
samples:
  - name: star
    features: [0.9, -0.8, 0.1]
    target: 1
  - name: blob
    features: [-0.8, 0.9, 0.2]
    target: -1
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	cfg.Dataset = path
	_, err = cfg.LoadDataset()
	assert.ErrorIs(t, err, nn.ErrDimensionMismatch)

	cfg.Network.Inputs = 3
	d, err = cfg.LoadDataset()
	require.NoError(t, err)
	assert.Equal(t, "shapes", d.Name)
	assert.Equal(t, 2, d.Len())
}
