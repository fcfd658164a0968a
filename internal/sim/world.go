// Package sim owns the simulation context: the wind model, the wave field
// and the ships, advanced together by Step in a fixed order so a ship never
// reads a wave field computed against a stale wind state.
package sim

import (
	"sailsim/internal/core"
	"sailsim/internal/ocean"
	"sailsim/internal/ship"
	"sailsim/internal/wind"
)

// Config gathers the compile-time style knobs for a session.
type Config struct {
	Seed        int64
	Ocean       ocean.Config
	Strength    wind.Strength
	Fluctuation float64
}

// DefaultConfig returns the standard session setup.
func DefaultConfig() Config {
	return Config{
		Seed:        1337,
		Ocean:       ocean.DefaultConfig(),
		Strength:    wind.ModerateBreeze,
		Fluctuation: 0.25,
	}
}

// World is the single owner of all mutable simulation state. It is not safe
// for concurrent use; all updates happen on the frame thread.
type World struct {
	wind  *wind.Model
	ocean *ocean.Field

	ships  []*ship.Ship
	inputs []ship.Input
}

// New constructs a World from the config. No ships exist until Spawn.
func New(cfg Config) *World {
	w := wind.New(cfg.Seed)
	w.SetStrength(cfg.Strength)
	w.SetFluctuation(cfg.Fluctuation)
	return &World{
		wind:  w,
		ocean: ocean.New(cfg.Ocean),
	}
}

// Wind exposes the wind model for indicator-style consumers.
func (w *World) Wind() *wind.Model { return w.wind }

// Ocean exposes the wave field for rendering-side geometry.
func (w *World) Ocean() *ocean.Field { return w.ocean }

// Ships exposes the live ship list.
func (w *World) Ships() []*ship.Ship { return w.ships }

// Spawn adds a ship of the given class at the given position and returns it.
func (w *World) Spawn(class ship.Class, pos core.Vec3) *ship.Ship {
	s := ship.New(class, pos)
	w.ships = append(w.ships, s)
	w.inputs = append(w.inputs, ship.Input{})
	return s
}

// SetInput records the held directional controls for ship i; they apply to
// every subsequent Step until replaced.
func (w *World) SetInput(i int, in ship.Input) {
	if i < 0 || i >= len(w.inputs) {
		return
	}
	w.inputs[i] = in
}

// SetStorm toggles storm mode on the wave field.
func (w *World) SetStorm(on bool) { w.ocean.SetStorm(on) }

// Storm reports whether storm mode is active.
func (w *World) Storm() bool { return w.ocean.Storm() }

// SetWindStrength sets the wind category.
func (w *World) SetWindStrength(s wind.Strength) { w.wind.SetStrength(s) }

// SetFluctuation sets the wind fluctuation coefficient.
func (w *World) SetFluctuation(f float64) { w.wind.SetFluctuation(f) }

// RandomizeWind draws a fresh random wind state.
func (w *World) RandomizeWind() { w.wind.Randomize() }

// SetShipDamage replaces ship i's damage state.
func (w *World) SetShipDamage(i int, d ship.Damage) {
	if i < 0 || i >= len(w.ships) {
		return
	}
	w.ships[i].SetDamage(d)
}

// Step advances the whole simulation by dt seconds in the mandated order:
// wind first, then the wave field against the updated wind, then every ship
// against both. Negative dt is treated as zero.
func (w *World) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}
	w.wind.Advance(dt)
	w.ocean.Tick(dt, w.wind)
	for i, s := range w.ships {
		s.Update(dt, w.wind, w.ocean, w.inputs[i])
	}
}
