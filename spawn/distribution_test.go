package spawn

import (
	"testing"

	"github.com/lixenwraith/skyfall/vmath"
)

func TestDistributionCumulativeNonDecreasing(t *testing.T) {
	d, err := NewDistribution([]float64{3, 0, 5, 0.5, 0, 10})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	cum := d.Cumulative()
	for i := 1; i < len(cum); i++ {
		if cum[i] < cum[i-1] {
			t.Errorf("Expected non-decreasing cumulative at %d: %f < %f", i, cum[i], cum[i-1])
		}
	}
	if d.Total() != 18.5 {
		t.Errorf("Expected total 18.5, got %f", d.Total())
	}
}

func TestDistributionSample(t *testing.T) {
	d, _ := NewDistribution([]float64{7, 19})

	tests := []struct {
		draw float64
		want int
	}{
		{0, 0},
		{6.99, 0},
		{7, 0}, // Boundary goes to the earlier entry
		{7.01, 1},
		{26, 1}, // Draw equal to total selects the last entry
		{30, 1},
	}

	for _, tt := range tests {
		if got := d.Sample(tt.draw); got != tt.want {
			t.Errorf("Sample(%f): expected %d, got %d", tt.draw, tt.want, got)
		}
	}
}

func TestDistributionZeroWeightUnreachable(t *testing.T) {
	d, _ := NewDistribution([]float64{0, 5, 0, 5, 0})

	for draw := 0.0; draw <= 10; draw += 0.25 {
		idx := d.Sample(draw)
		if idx != 1 && idx != 3 {
			t.Fatalf("Sample(%f): expected 1 or 3, got %d", draw, idx)
		}
	}
	if d.Sample(10) != 3 {
		t.Errorf("Expected total draw to select last positive entry 3, got %d", d.Sample(10))
	}
}

func TestDistributionEmpty(t *testing.T) {
	empty, _ := NewDistribution(nil)
	if empty.Sample(0) != -1 {
		t.Error("Expected -1 from an empty distribution")
	}

	zero, _ := NewDistribution([]float64{0, 0})
	if zero.Sample(0) != -1 {
		t.Error("Expected -1 from an all-zero distribution")
	}
}

func TestDistributionRejectsNegative(t *testing.T) {
	if _, err := NewDistribution([]float64{1, -2}); err == nil {
		t.Error("Expected error for negative weight")
	}
}

func TestDistributionSampleRandFrequencies(t *testing.T) {
	d, _ := NewDistribution([]float64{1, 3})
	rng := vmath.NewFastRand(2024)

	counts := [2]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[d.SampleRand(rng)]++
	}

	ratio := float64(counts[1]) / float64(n)
	if ratio < 0.72 || ratio > 0.78 {
		t.Errorf("Expected ~0.75 share for weight 3, got %f", ratio)
	}
}
