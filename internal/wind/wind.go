// Package wind models the ambient wind: a direction and categorical strength
// that drift stochastically over time, plus the pure helpers consumers use to
// turn wind state into vectors and sail-efficiency factors.
package wind

import (
	"math"

	"sailsim/internal/core"
)

// WalkParams tunes the stochastic random walk applied by Advance. The values
// are carried over from the original tuning and are not physical truths.
type WalkParams struct {
	// DriftScale scales the per-tick probability gate (fluctuation * dt * DriftScale).
	DriftScale float64
	// DriftMagnitude bounds the direction perturbation in radians.
	DriftMagnitude float64
	// ShiftChance is the probability, once the gate opens, that strength steps.
	ShiftChance float64
	// ShiftDown and ShiftUp split the strength step between a category down,
	// a category up, and a weighted resample for the remainder.
	ShiftDown float64
	ShiftUp   float64
}

// DefaultWalkParams returns the standard random-walk tuning.
func DefaultWalkParams() WalkParams {
	return WalkParams{
		DriftScale:     0.5,
		DriftMagnitude: 0.05,
		ShiftChance:    0.01,
		ShiftDown:      0.35,
		ShiftUp:        0.70,
	}
}

// Model holds the current wind state. One instance lives per session and is
// mutated in place every tick.
type Model struct {
	direction   float64
	strength    Strength
	speedKnots  float64
	fluctuation float64

	walk WalkParams
	rng  *core.RNG
}

// New constructs a Model with a deterministic RNG and moderate defaults.
func New(seed int64) *Model {
	m := &Model{
		fluctuation: 0.25,
		walk:        DefaultWalkParams(),
		rng:         core.NewRNG(seed),
	}
	m.SetStrength(GentleBreeze)
	return m
}

// Direction returns the wind direction in radians, in [0, 2π).
func (m *Model) Direction() float64 { return m.direction }

// Strength returns the current wind category.
func (m *Model) Strength() Strength { return m.strength }

// SpeedKnots returns the canonical speed for the current category.
func (m *Model) SpeedKnots() float64 { return m.speedKnots }

// Fluctuation returns the rate-of-change coefficient in [0, 1].
func (m *Model) Fluctuation() float64 { return m.fluctuation }

// SetStrength sets the category and recomputes the canonical speed. The two
// are never set independently.
func (m *Model) SetStrength(s Strength) {
	m.strength = s.Clamp()
	m.speedKnots = m.strength.Knots()
}

// SetDirection sets the wind direction, wrapped into [0, 2π).
func (m *Model) SetDirection(radians float64) {
	m.direction = core.WrapAngle(radians)
}

// SetFluctuation sets the fluctuation coefficient, clamped to [0, 1].
func (m *Model) SetFluctuation(f float64) {
	m.fluctuation = core.Clamp01(f)
}

// SetWalkParams overrides the random-walk tuning.
func (m *Model) SetWalkParams(p WalkParams) { m.walk = p }

// Advance evolves the wind over dt seconds. With probability
// fluctuation*dt*DriftScale the direction drifts by a small random angle, and
// within that same branch the strength occasionally steps one category up or
// down or resamples from the weighted distribution.
func (m *Model) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if m.rng.Float64() >= m.fluctuation*dt*m.walk.DriftScale {
		return
	}

	drift := m.rng.Range(-m.walk.DriftMagnitude, m.walk.DriftMagnitude) * m.fluctuation
	m.direction = core.WrapAngle(m.direction + drift)

	if m.rng.Float64() < m.walk.ShiftChance {
		r := m.rng.Float64()
		switch {
		case r < m.walk.ShiftDown:
			m.SetStrength(m.strength - 1)
		case r < m.walk.ShiftUp:
			m.SetStrength(m.strength + 1)
		default:
			m.SetStrength(m.weightedStrength())
		}
	}
}

// Randomize draws a fresh wind state: uniform direction, weighted strength
// and a fluctuation in [0.1, 0.4].
func (m *Model) Randomize() {
	m.direction = m.rng.Range(0, 2*math.Pi)
	m.SetStrength(m.weightedStrength())
	m.fluctuation = m.rng.Range(0.1, 0.4)
}

func (m *Model) weightedStrength() Strength {
	total := 0.0
	for _, w := range strengthWeights {
		total += w
	}
	pick := m.rng.Float64() * total
	for i, w := range strengthWeights {
		pick -= w
		if pick < 0 {
			return Strength(i)
		}
	}
	return Hurricane
}

// Vector returns the unit vector the wind blows toward.
func (m *Model) Vector() core.Vec2 { return core.FromAngle(m.direction) }

// AngleBetween returns the smallest unsigned difference between two angles,
// in [0, π].
func AngleBetween(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 2*math.Pi))
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// PointOfSailMultiplier maps the unsigned angle between heading and wind to a
// propulsion efficiency factor. The beam-to-broad reach band (90°, 120°] is
// optimal; sailing close to the wind is nearly dead.
func PointOfSailMultiplier(angle float64) float64 {
	deg := angle * 180 / math.Pi
	switch {
	case deg <= 30:
		return 0.1
	case deg <= 60:
		return 0.5
	case deg <= 90:
		return 0.7
	case deg <= 120:
		return 1.0
	case deg <= 150:
		return 0.9
	default:
		return 0.6
	}
}
