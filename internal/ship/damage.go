package ship

import "sailsim/internal/core"

// Damage holds four independent integrity scalars in [0, 1]. Each degrades
// one capability multiplicatively: hull scales buoyancy, sail and mast scale
// thrust, rudder scales turn rate. 1 means intact, 0 means destroyed.
type Damage struct {
	Hull   float64
	Sail   float64
	Mast   float64
	Rudder float64
}

// FullIntegrity returns an undamaged state.
func FullIntegrity() Damage {
	return Damage{Hull: 1, Sail: 1, Mast: 1, Rudder: 1}
}

// Clamped returns a copy with every component restricted to [0, 1]. The
// physics reads damage through this, so externally supplied values can never
// push a multiplier out of range.
func (d Damage) Clamped() Damage {
	return Damage{
		Hull:   core.Clamp01(d.Hull),
		Sail:   core.Clamp01(d.Sail),
		Mast:   core.Clamp01(d.Mast),
		Rudder: core.Clamp01(d.Rudder),
	}
}
