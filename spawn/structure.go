package spawn

// Offset is one object inside a structure
// Nil X means a uniform random x across the viewport, nil Y means the kind's default spawn height
type Offset struct {
	X       *int
	Y       *int
	Kind    EnemyKind
	Variant BasicVariant
	Dir     Direction
}

// Structure is a weighted group of offsets sampled as one unit
type Structure struct {
	Name    string
	Weight  float64
	Offsets []Offset
}

// Int returns a pointer to v for optional offset coordinates
func Int(v int) *int {
	return &v
}
