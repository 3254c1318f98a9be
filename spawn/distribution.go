package spawn

import (
	"fmt"
	"math"

	"github.com/lixenwraith/skyfall/vmath"
)

// Distribution is a categorical distribution over indices, stored as prefix sums
type Distribution struct {
	weights    []float64
	cumulative []float64
}

// NewDistribution builds a distribution from non-negative weights
func NewDistribution(weights []float64) (*Distribution, error) {
	d := &Distribution{
		weights:    make([]float64, len(weights)),
		cumulative: make([]float64, len(weights)),
	}

	sum := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("weight %d is %v, must be finite and non-negative", i, w)
		}
		sum += w
		d.weights[i] = w
		d.cumulative[i] = sum
	}
	return d, nil
}

// Len returns the number of entries
func (d *Distribution) Len() int {
	return len(d.weights)
}

// Total returns the sum of all weights
func (d *Distribution) Total() float64 {
	if len(d.cumulative) == 0 {
		return 0
	}
	return d.cumulative[len(d.cumulative)-1]
}

// Cumulative returns a copy of the prefix sums
func (d *Distribution) Cumulative() []float64 {
	out := make([]float64, len(d.cumulative))
	copy(out, d.cumulative)
	return out
}

// Sample returns the first index whose cumulative weight is >= draw and whose own weight is positive
// Ties on a shared boundary go to the earlier entry; zero-weight entries are never chosen.
// A draw at or beyond the total selects the last positive entry. Returns -1 if the total is zero
func (d *Distribution) Sample(draw float64) int {
	last := -1
	for i, c := range d.cumulative {
		if d.weights[i] <= 0 {
			continue
		}
		last = i
		if c >= draw {
			return i
		}
	}
	return last
}

// SampleRand draws uniformly in [0, total) and samples
func (d *Distribution) SampleRand(rng *vmath.FastRand) int {
	return d.Sample(rng.Float64() * d.Total())
}
