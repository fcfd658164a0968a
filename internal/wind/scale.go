package wind

// Strength is an ordinal wind category on the 13-level Beaufort-style scale.
type Strength int

const (
	Calm Strength = iota
	LightAir
	LightBreeze
	GentleBreeze
	ModerateBreeze
	FreshBreeze
	StrongBreeze
	NearGale
	Gale
	StrongGale
	Storm
	ViolentStorm
	Hurricane
)

// StrengthCount is the number of categories on the scale.
const StrengthCount = int(Hurricane) + 1

var strengthNames = [StrengthCount]string{
	"Calm",
	"Light Air",
	"Light Breeze",
	"Gentle Breeze",
	"Moderate Breeze",
	"Fresh Breeze",
	"Strong Breeze",
	"Near Gale",
	"Gale",
	"Strong Gale",
	"Storm",
	"Violent Storm",
	"Hurricane",
}

// One canonical speed per category, strictly increasing with severity.
var strengthKnots = [StrengthCount]float64{
	0, 2, 5, 8.5, 13.5, 19, 24.5, 30.5, 37, 44, 51.5, 59.5, 68,
}

// Weighted toward moderate categories; used by Randomize and the strength
// resample branch of the random walk.
var strengthWeights = [StrengthCount]float64{
	5, 10, 15, 20, 20, 15, 7, 4, 2, 1, 0.5, 0.3, 0.2,
}

// Clamp restricts s to the valid category range. Out-of-range categories are
// clamped rather than wrapped so a step past either end of the scale never
// jumps to the opposite extreme.
func (s Strength) Clamp() Strength {
	if s < Calm {
		return Calm
	}
	if s > Hurricane {
		return Hurricane
	}
	return s
}

// Knots returns the canonical wind speed for the category.
func (s Strength) Knots() float64 { return strengthKnots[s.Clamp()] }

// String returns the display name of the category.
func (s Strength) String() string { return strengthNames[s.Clamp()] }
