// Package dataset holds labelled samples for training the explorer's networks.
package dataset

import (
	"io"
	"math/rand"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Sample is one labelled feature vector.
type Sample struct {
	Name     string    `yaml:"name" json:"name"`
	Features []float64 `yaml:"features" json:"features"`
	Target   float64   `yaml:"target" json:"target"`
}

// Dataset is an ordered list of samples sharing one feature dimension.
type Dataset struct {
	Name    string   `yaml:"name" json:"name"`
	Samples []Sample `yaml:"samples" json:"samples"`
}

// New validates samples and builds a Dataset.
func New(name string, samples []Sample) (*Dataset, error) {
	d := &Dataset{Name: name, Samples: samples}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks that the dataset is non-empty and every sample has the
// same number of features.
func (d *Dataset) Validate() error {
	if len(d.Samples) == 0 {
		return errors.Errorf("dataset %q has no samples", d.Name)
	}
	dim := len(d.Samples[0].Features)
	if dim == 0 {
		return errors.Errorf("dataset %q: sample 0 has no features", d.Name)
	}
	for i, s := range d.Samples {
		if len(s.Features) != dim {
			return errors.Errorf("dataset %q: sample %d has %d features, want %d",
				d.Name, i, len(s.Features), dim)
		}
	}
	return nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Samples)
}

// Dim returns the feature dimension (0 for an empty dataset).
func (d *Dataset) Dim() int {
	if len(d.Samples) == 0 {
		return 0
	}
	return len(d.Samples[0].Features)
}

// Inputs returns the feature vectors in sample order.
func (d *Dataset) Inputs() [][]float64 {
	xs := make([][]float64, len(d.Samples))
	for i, s := range d.Samples {
		xs[i] = s.Features
	}
	return xs
}

// Targets returns the targets in sample order.
func (d *Dataset) Targets() []float64 {
	ys := make([]float64, len(d.Samples))
	for i, s := range d.Samples {
		ys[i] = s.Target
	}
	return ys
}

// Split divides the dataset into train and validation parts.
// The last validationRatio fraction of samples goes to validation. The ratio
// must lie in (0, 1) and leave at least one sample on each side.
func (d *Dataset) Split(validationRatio float64) (*Dataset, *Dataset, error) {
	if !(validationRatio > 0 && validationRatio < 1) {
		return nil, nil, errors.Errorf("validation ratio must be in (0, 1), got %g", validationRatio)
	}
	splitIdx := int(float64(len(d.Samples)) * (1.0 - validationRatio))
	if splitIdx == 0 || splitIdx == len(d.Samples) {
		return nil, nil, errors.Errorf("validation ratio %g leaves an empty part of %d samples",
			validationRatio, len(d.Samples))
	}

	return &Dataset{
			Name:    d.Name + "/train",
			Samples: d.Samples[:splitIdx],
		}, &Dataset{
			Name:    d.Name + "/val",
			Samples: d.Samples[splitIdx:],
		}, nil
}

// Shuffled returns a copy of the dataset with samples in random order.
func (d *Dataset) Shuffled(rng *rand.Rand) *Dataset {
	samples := append([]Sample(nil), d.Samples...)
	rng.Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})
	return &Dataset{Name: d.Name, Samples: samples}
}

// LoadYAML decodes and validates a dataset.
//
// Format:
//
//	name: shapes
//	samples:
//	  - name: star
//	    features: [0.9, -0.8]
//	    target: 1
func LoadYAML(r io.Reader) (*Dataset, error) {
	var d Dataset
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(err, "decode dataset")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
