package spawn

import (
	"fmt"

	"github.com/lixenwraith/skyfall/parameter"
	"github.com/lixenwraith/skyfall/vmath"
)

// Table is the ordered structure list with its cumulative weights
// Immutable once built
type Table struct {
	structures []Structure
	dist       *Distribution
}

// NewTable builds a table in the given order
func NewTable(structures ...Structure) (*Table, error) {
	weights := make([]float64, len(structures))
	for i, s := range structures {
		weights[i] = s.Weight
	}

	dist, err := NewDistribution(weights)
	if err != nil {
		return nil, fmt.Errorf("spawn table: %w", err)
	}

	owned := make([]Structure, len(structures))
	copy(owned, structures)
	return &Table{structures: owned, dist: dist}, nil
}

// Sample selects the structure for a draw in [0, Total()]
// Returns false when the table has no reachable structure
func (t *Table) Sample(draw float64) (Structure, bool) {
	idx := t.dist.Sample(draw)
	if idx < 0 {
		return Structure{}, false
	}
	return t.structures[idx], true
}

// SampleRand selects a structure with a uniform draw
func (t *Table) SampleRand(rng *vmath.FastRand) (Structure, bool) {
	return t.Sample(rng.Float64() * t.dist.Total())
}

// Structures returns a copy of the structure list
func (t *Table) Structures() []Structure {
	out := make([]Structure, len(t.structures))
	copy(out, t.structures)
	return out
}

// Cumulative returns the prefix-summed weights, one per structure
func (t *Table) Cumulative() []float64 {
	return t.dist.Cumulative()
}

// Total returns the sum of structure weights
func (t *Table) Total() float64 {
	return t.dist.Total()
}

// Len returns the number of structures
func (t *Table) Len() int {
	return len(t.structures)
}

// DefaultStructures returns the built-in random spawn set, weights out of 200
func DefaultStructures() []Structure {
	single := func(name string, weight float64, o Offset) Structure {
		return Structure{Name: name, Weight: weight, Offsets: []Offset{o}}
	}

	structures := []Structure{
		single("hole", 10, Offset{Kind: KindHole}),
		single("energybar", 10, Offset{Kind: KindEnergyBar}),
		single("rainbow", 1, Offset{Kind: KindRainbow, X: Int(parameter.RainbowSpawnX)}),
		single("plane-left", parameter.PlaneSpawnWeight, Offset{Kind: KindPlane, Dir: DirLeft}),
		single("plane-right", parameter.PlaneSpawnWeight, Offset{Kind: KindPlane, Dir: DirRight}),
		single("planet", 20, Offset{Kind: KindPlanet}),
	}

	for v := VariantChocolate; v <= VariantDrink; v++ {
		structures = append(structures, single(fmt.Sprintf("regular-%d", v), 20, Offset{Kind: KindBasic, Variant: v}))
	}
	return structures
}

// DefaultTable builds the table from DefaultStructures followed by extra structures
func DefaultTable(extra ...Structure) (*Table, error) {
	return NewTable(append(DefaultStructures(), extra...)...)
}
