package anonymize

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/dbsmedya/goanonym/internal/dataset"
)

// NoiseSource yields bounded uniform noise for perturbation. The source is
// injected so tests can seed it and assert reproducible output.
type NoiseSource interface {
	// Uniform returns a value drawn uniformly from [-magnitude, magnitude].
	Uniform(magnitude float64) float64
}

type randNoiseSource struct {
	rng *rand.Rand
}

// NewNoiseSource returns a NoiseSource seeded with the given value.
// The same seed produces the same noise sequence.
func NewNoiseSource(seed int64) NoiseSource {
	return &randNoiseSource{rng: rand.New(rand.NewSource(seed))}
}

func (r *randNoiseSource) Uniform(magnitude float64) float64 {
	return (r.rng.Float64()*2 - 1) * magnitude
}

// Perturb adds uniform noise in [-magnitude, magnitude] to value, rounds to
// two decimal places, and clamps to floor. The clamp is lossy: the result
// does not record that clamping happened.
func Perturb(value, magnitude, floor float64, src NoiseSource) float64 {
	out := roundCents(value + src.Uniform(magnitude))
	if out < floor {
		out = floor
	}
	return out
}

// PerturbColumn writes a perturbed copy of a numeric column into a derived
// target column, leaving the original intact.
func PerturbColumn(ds *dataset.Dataset, column, target string, magnitude, floor float64, src NoiseSource) error {
	values, err := ds.Float64Column(column)
	if err != nil {
		return fmt.Errorf("perturb: %w", err)
	}

	ds.AddColumn(target)
	for i, v := range values {
		ds.Rows[i][target] = Perturb(v, magnitude, floor, src)
	}

	return nil
}

// roundCents rounds to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
