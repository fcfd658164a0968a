package ship

// Class identifies a ship class.
type Class int

const (
	Sloop Class = iota
	Schooner
	Brigantine
	Frigate
	Galleon
)

// ClassCount is the number of ship classes.
const ClassCount = int(Galleon) + 1

// Stats holds the immutable per-class characteristics. Looked up by class,
// never mutated.
type Stats struct {
	Speed           float64 // maximum hull speed in world units per second
	Maneuverability float64 // turn-rate factor in (0, 1]
	Cannons         int
	CargoCapacity   int
	CrewCapacity    int
	Health          int
	Draft           float64
	Displacement    float64
	HullLength      float64
	HullWidth       float64
	SailArea        float64
}

var classNames = [ClassCount]string{
	"Sloop",
	"Schooner",
	"Brigantine",
	"Frigate",
	"Galleon",
}

var classTable = [ClassCount]Stats{
	// Sloop: small, nimble, drifts hard in a crosswind.
	{
		Speed: 6.5, Maneuverability: 0.9, Cannons: 8,
		CargoCapacity: 40, CrewCapacity: 25, Health: 80,
		Draft: 1.2, Displacement: 120, HullLength: 18, HullWidth: 5, SailArea: 180,
	},
	// Schooner: fastest class, still light.
	{
		Speed: 7.0, Maneuverability: 0.8, Cannons: 12,
		CargoCapacity: 90, CrewCapacity: 40, Health: 110,
		Draft: 1.6, Displacement: 220, HullLength: 26, HullWidth: 6.5, SailArea: 320,
	},
	// Brigantine: the all-round trader.
	{
		Speed: 6.0, Maneuverability: 0.65, Cannons: 20,
		CargoCapacity: 150, CrewCapacity: 80, Health: 150,
		Draft: 2.0, Displacement: 340, HullLength: 30, HullWidth: 8, SailArea: 420,
	},
	// Frigate: heavy, steady gun platform.
	{
		Speed: 5.5, Maneuverability: 0.5, Cannons: 36,
		CargoCapacity: 260, CrewCapacity: 180, Health: 220,
		Draft: 2.8, Displacement: 560, HullLength: 42, HullWidth: 11, SailArea: 650,
	},
	// Galleon: slowest and most stubborn, barely drifts.
	{
		Speed: 4.5, Maneuverability: 0.35, Cannons: 48,
		CargoCapacity: 500, CrewCapacity: 250, Health: 300,
		Draft: 3.4, Displacement: 900, HullLength: 50, HullWidth: 14, SailArea: 800,
	},
}

// ClassStats returns the stats for the class, clamping unknown values to Sloop.
func ClassStats(c Class) Stats {
	if c < 0 || int(c) >= ClassCount {
		return classTable[Sloop]
	}
	return classTable[c]
}

// String returns the display name of the class.
func (c Class) String() string {
	if c < 0 || int(c) >= ClassCount {
		return classNames[Sloop]
	}
	return classNames[c]
}

// ParseClass resolves a class by (case-sensitive) display name.
func ParseClass(name string) (Class, bool) {
	for i, n := range classNames {
		if n == name {
			return Class(i), true
		}
	}
	return Sloop, false
}
