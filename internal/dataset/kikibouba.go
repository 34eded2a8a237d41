package dataset

// Kiki/bouba target labels.
const (
	Kiki  = 1.0
	Bouba = -1.0
)

// KikiBouba returns the two-class shape dataset shown in the exhibit.
//
// Each sample has two features scaled to [-1, 1]:
//   - spikiness: how sharp the outline's corners are
//   - roundness: how smooth and curved the outline is
//
// Spiky shapes are "kiki" (target +1), round ones "bouba" (target -1).
// The classes are linearly separable.
func KikiBouba() *Dataset {
	return &Dataset{
		Name: "kiki-bouba",
		Samples: []Sample{
			{Name: "kiki-star", Features: []float64{0.9, -0.8}, Target: Kiki},
			{Name: "kiki-zigzag", Features: []float64{0.8, -0.6}, Target: Kiki},
			{Name: "kiki-shard", Features: []float64{0.7, -0.9}, Target: Kiki},
			{Name: "kiki-burst", Features: []float64{0.95, -0.5}, Target: Kiki},
			{Name: "bouba-blob", Features: []float64{-0.8, 0.9}, Target: Bouba},
			{Name: "bouba-cloud", Features: []float64{-0.6, 0.7}, Target: Bouba},
			{Name: "bouba-pebble", Features: []float64{-0.9, 0.8}, Target: Bouba},
			{Name: "bouba-bean", Features: []float64{-0.5, 0.95}, Target: Bouba},
		},
	}
}
