package ocean

import "sailsim/internal/wind"

// Storm mode amplifies the spatial frequency and amplitude of the field
// without touching any persistent state.
const (
	stormScaleFactor  = 1.5
	stormHeightFactor = 1.75
)

// Spatial frequency multiplier per wind category, increasing with severity.
var waveScaleTable = [wind.StrengthCount]float64{
	0.2, 0.4, 0.7, 1.0, 1.3, 1.7, 2.1, 2.6, 3.1, 3.7, 4.2, 4.6, 5.0,
}

// Peak wave amplitude in world units per wind category.
var maxWaveHeightTable = [wind.StrengthCount]float64{
	0.05, 0.1, 0.2, 0.35, 0.55, 0.8, 1.2, 1.7, 2.4, 3.2, 4.3, 5.6, 7.0,
}

// WaveScale returns the spatial frequency factor for the category.
func WaveScale(s wind.Strength, storm bool) float64 {
	v := waveScaleTable[s.Clamp()]
	if storm {
		v *= stormScaleFactor
	}
	return v
}

// MaxWaveHeight returns the amplitude ceiling for the category.
func MaxWaveHeight(s wind.Strength, storm bool) float64 {
	v := maxWaveHeightTable[s.Clamp()]
	if storm {
		v *= stormHeightFactor
	}
	return v
}
