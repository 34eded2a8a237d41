// Package config loads the explorer's YAML configuration.
package config

import (
	"io"
	"os"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/dataset"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/nn"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/train"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultAddr is the address the HTTP API listens on when none is configured.
const DefaultAddr = ":8080"

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// Config is the top-level configuration file.
//
// Example:
//
//	network:
//	  inputs: 2
//	  layers: [3, 3, 1]
//	  activation: tanh
//	  seed: 42
//	training:
//	  learning_rate: 0.05
//	  optimizer: sgd
//	  loss: mse
//	  steps: 200
//	server:
//	  addr: ":8080"
//	dataset: shapes.yaml
type Config struct {
	Network  nn.MLPConfig `yaml:"network" json:"network"`
	Training train.Config `yaml:"training" json:"training"`
	Server   ServerConfig `yaml:"server" json:"server"`
	Dataset  string       `yaml:"dataset,omitempty" json:"dataset,omitempty"` // Empty means kiki/bouba
}

// Default returns the configuration of the kiki/bouba demo.
func Default() Config {
	return Config{
		Network: nn.MLPConfig{
			Inputs: 2,
			Layers: []int{3, 3, 1},
		},
		Training: train.DefaultConfig(),
		Server:   ServerConfig{Addr: DefaultAddr},
	}
}

// Load reads and validates a YAML configuration file.
// Keys missing from the file keep their Default values.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load %s", path)
	}
	return cfg, nil
}

// Decode reads a YAML configuration from r. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Network.Validate(); err != nil {
		return errors.Wrap(err, "network")
	}
	if last := c.Network.Layers[len(c.Network.Layers)-1]; last != 1 {
		return errors.Wrapf(nn.ErrInvalidArchitecture, "network: last layer must have one neuron, got %d", last)
	}

	t := c.Training
	if t.LearningRate < 0 {
		return errors.Errorf("training: learning rate must not be negative, got %g", t.LearningRate)
	}
	if t.Momentum < 0 || t.Momentum >= 1 {
		return errors.Errorf("training: momentum must be in [0, 1), got %g", t.Momentum)
	}
	if t.Steps < 0 {
		return errors.Errorf("training: steps must not be negative, got %d", t.Steps)
	}
	if _, err := train.ParseLoss(t.Loss); err != nil {
		return errors.Wrap(err, "training")
	}
	if _, err := train.NewOptimizer(nil, t); err != nil {
		return errors.Wrap(err, "training")
	}

	if c.Server.Addr == "" {
		return errors.New("server: addr must not be empty")
	}
	return nil
}

// LoadDataset returns the configured training set, or kiki/bouba when no
// dataset file is set. The dataset must match the network's input size.
func (c Config) LoadDataset() (*dataset.Dataset, error) {
	d := dataset.KikiBouba()
	if c.Dataset != "" {
		f, err := os.Open(c.Dataset)
		if err != nil {
			return nil, errors.Wrap(err, "open dataset")
		}
		defer f.Close()

		if d, err = dataset.LoadYAML(f); err != nil {
			return nil, errors.Wrapf(err, "load %s", c.Dataset)
		}
	}
	if d.Dim() != c.Network.Inputs {
		return nil, errors.Wrapf(nn.ErrDimensionMismatch,
			"dataset %q has %d features, network expects %d", d.Name, d.Dim(), c.Network.Inputs)
	}
	return d, nil
}
