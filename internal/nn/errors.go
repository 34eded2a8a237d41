package nn

import "github.com/pkg/errors"

var (
	// ErrDimensionMismatch is returned (or panicked, inside forward passes)
	// when a vector length does not match the expected fan-in or count.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrEmptyBatch is returned by loss functions given no samples.
	ErrEmptyBatch = errors.New("empty batch")

	// ErrInvalidArchitecture is returned for non-positive layer sizes.
	ErrInvalidArchitecture = errors.New("invalid architecture")
)
