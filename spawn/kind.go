package spawn

// EnemyKind selects the object template a spawn offset instantiates
type EnemyKind uint8

const (
	KindHole EnemyKind = iota
	KindEnergyBar
	KindRainbow
	KindPlane
	KindPlanet
	KindBasic
)

var kindNames = [...]string{
	KindHole:      "blackhole",
	KindEnergyBar: "energybar",
	KindRainbow:   "rainbow",
	KindPlane:     "plane",
	KindPlanet:    "planet",
	KindBasic:     "regular",
}

// String returns the structure file token for the kind
func (k EnemyKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind maps a structure file token to a kind
// Unrecognized tokens fall back to KindPlanet and report false
func ParseKind(token string) (EnemyKind, bool) {
	for i, name := range kindNames {
		if name == token {
			return EnemyKind(i), true
		}
	}
	return KindPlanet, false
}

// BasicVariant picks one of the plain damaging obstacles
type BasicVariant uint8

const (
	VariantAny BasicVariant = iota // Chosen at spawn time
	VariantChocolate
	VariantBrokenChocolate
	VariantEgg
	VariantLollipop
	VariantHeart
	VariantDrink
)

// BasicVariantCount is the number of concrete variants, excluding VariantAny
const BasicVariantCount = 6

// Direction is the horizontal heading for kinds that have one
type Direction int8

const (
	DirAny   Direction = 0 // Chosen at spawn time
	DirLeft  Direction = -1
	DirRight Direction = 1
)
