// Package ship integrates sailing-ship dynamics: buoyancy sampled at four
// hull points against the wave field, point-of-sail thrust from the wind
// model, rudder and drag, all modulated by the ship's damage state.
package ship

import (
	"math"

	"sailsim/internal/core"
	"sailsim/internal/wind"
)

// HeightSampler is the water surface a ship floats on. The ship holds a
// direct reference; heights must always be finite.
type HeightSampler interface {
	SampleHeight(x, z float64) float64
}

// Input carries the held directional controls for one tick.
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Integration constants. Tuned for stability at typical frame rates; none of
// them are runtime-configurable.
const (
	// settlingDuration pins a freshly spawned ship to the water surface
	// before velocity integration begins, so an arbitrary spawn height does
	// not turn into a free-fall bounce.
	settlingDuration = 0.5
	settleSnap       = 0.5

	baseTurnRate   = 0.9
	thrustCoupling = 0.22
	reverseThrust  = 0.8
	driftCoupling  = 6.0

	baseDrag     = 0.55
	headwindDrag = 0.35
	hullDrag     = 0.30
	maxDragStep  = 0.25

	headwindAngle = math.Pi / 3

	buoyancyCoupling = 0.01
	torqueCoupling   = 0.004
	gravity          = 4.0
	angularDragRate  = 1.8

	waveBlend    = 0.72
	maxSinkDepth = 1.6

	trimInterval = 0.25
	trimRate     = 0.2

	windSpeedRef = 30.0
)

// Hull-frame buoyancy sample indices: x runs bow-ward, z starboard.
const (
	sampleBow = iota
	sampleStern
	sampleStarboard
	samplePort
)

// Ship is the mutable per-ship simulation state.
type Ship struct {
	class  Class
	stats  Stats
	damage Damage

	pos     core.Vec3
	heading float64
	vel     core.Vec3
	angVel  core.Vec3

	trim      float64
	prevTrim  float64
	trimClock float64

	// Fixed hull-relative buoyancy sample points, computed once from the
	// class dimensions.
	samples [4]core.Vec3

	settleElapsed float64

	pitch, roll         float64
	tiltPitch, tiltRoll float64
}

// New creates a ship of the given class at the given position, intact and in
// the settling phase.
func New(class Class, pos core.Vec3) *Ship {
	stats := ClassStats(class)
	halfLen := stats.HullLength * 0.42
	halfWidth := stats.HullWidth * 0.45
	keel := -stats.Draft * 0.5
	return &Ship{
		class:  class,
		stats:  stats,
		damage: FullIntegrity(),
		pos:    pos,
		samples: [4]core.Vec3{
			sampleBow:       {X: halfLen, Y: keel},
			sampleStern:     {X: -halfLen, Y: keel},
			sampleStarboard: {Y: keel, Z: halfWidth},
			samplePort:      {Y: keel, Z: -halfWidth},
		},
	}
}

// Class returns the ship's class.
func (s *Ship) Class() Class { return s.class }

// Stats returns the immutable class stats.
func (s *Ship) Stats() Stats { return s.stats }

// Damage returns the current damage state.
func (s *Ship) Damage() Damage { return s.damage }

// SetDamage replaces the damage state; values are clamped on read.
func (s *Ship) SetDamage(d Damage) { s.damage = d }

// Position returns the ship's world position.
func (s *Ship) Position() core.Vec3 { return s.pos }

// Heading returns the ship's heading in radians, in [0, 2π).
func (s *Ship) Heading() float64 { return s.heading }

// SetHeading sets the heading, wrapped to the canonical range.
func (s *Ship) SetHeading(radians float64) { s.heading = core.WrapAngle(radians) }

// Velocity returns the ship's linear velocity.
func (s *Ship) Velocity() core.Vec3 { return s.vel }

// AngularVelocity returns the ship's angular velocity.
func (s *Ship) AngularVelocity() core.Vec3 { return s.angVel }

// Trim returns the current sail trim in [-1, 1].
func (s *Ship) Trim() float64 { return s.trim }

// PreviousTrim returns the trim before the latest adjustment step; the
// difference drives the lagged visual sail response.
func (s *Ship) PreviousTrim() float64 { return s.prevTrim }

// Pitch returns the blended visual pitch angle.
func (s *Ship) Pitch() float64 { return s.pitch }

// Roll returns the blended visual roll angle.
func (s *Ship) Roll() float64 { return s.roll }

// Settling reports whether the ship is still pinned to the surface.
func (s *Ship) Settling() bool { return s.settleElapsed < settlingDuration }

// SinkDepth is the extra visual submersion caused by hull damage.
func (s *Ship) SinkDepth() float64 {
	return (1 - core.Clamp01(s.damage.Hull)) * maxSinkDepth
}

// Update advances the ship by dt seconds against the given wind and water.
func (s *Ship) Update(dt float64, w *wind.Model, water HeightSampler, in Input) {
	if dt <= 0 {
		return
	}

	if s.settleElapsed < settlingDuration {
		s.settleElapsed += dt
		h := sampleAt(water, s.pos.X, s.pos.Z)
		s.pos.Y = core.Lerp(s.pos.Y, h, settleSnap)
		return
	}

	dmg := s.damage.Clamped()

	// Rudder, scaled by class maneuverability and rudder integrity.
	if in.Left != in.Right {
		turn := baseTurnRate * s.stats.Maneuverability * dmg.Rudder * dt
		if in.Left {
			turn = -turn
		}
		s.heading = core.WrapAngle(s.heading + turn)
	}

	forward := core.Vec3{X: math.Cos(s.heading), Z: math.Sin(s.heading)}

	angle := wind.AngleBetween(s.heading, w.Direction())
	posMult := wind.PointOfSailMultiplier(angle)
	sailEff := dmg.Sail * dmg.Mast

	switch {
	case in.Forward:
		thrust := s.stats.Speed * thrustCoupling * posMult * sailEff
		s.vel.X += forward.X * thrust * dt
		s.vel.Z += forward.Z * thrust * dt

		// Crosswind drift: the wind component perpendicular to the heading
		// pushes the hull sideways, more so the lighter the ship.
		wv := w.Vector()
		along := wv.X*forward.X + wv.Z*forward.Z
		driftScale := thrust * driftCoupling / float64(s.stats.CargoCapacity)
		s.vel.X += (wv.X - forward.X*along) * driftScale * dt
		s.vel.Z += (wv.Z - forward.Z*along) * driftScale * dt
	case in.Backward:
		// Sweeps and kedging, not sails: weak and wind-independent.
		s.vel.X -= forward.X * reverseThrust * dt
		s.vel.Z -= forward.Z * reverseThrust * dt
	}

	// Drag, with a penalty for sailing into the wind and for a damaged hull
	// riding deep, capped so large frames cannot reverse the velocity.
	decay := baseDrag + (1-dmg.Hull)*hullDrag
	if angle < headwindAngle {
		decay += headwindDrag * (1 - angle/headwindAngle)
	}
	step := decay * dt
	if step > maxDragStep {
		step = maxDragStep
	}
	s.vel = s.vel.Scale(1 - step)

	force, torque, heights := s.buoyancy(water, dmg.Hull)
	s.vel.Y += force.Y * buoyancyCoupling * dt
	s.vel.Y -= gravity * dt
	s.angVel = s.angVel.Add(torque.Scale(torqueCoupling * dt))
	adrag := angularDragRate * dt
	if adrag > 1 {
		adrag = 1
	}
	s.angVel = s.angVel.Scale(1 - adrag)

	s.clampHorizontalSpeed(posMult, w.SpeedKnots())

	s.pos = s.pos.Add(s.vel.Scale(dt))

	s.updateAttitude(dt, heights)
	s.adjustTrim(dt, w)
}

// buoyancy samples the water at the four hull points and accumulates the
// resulting upward force and torque. A fully breached hull (integrity 0)
// produces no lift at all.
func (s *Ship) buoyancy(water HeightSampler, hull float64) (force, torque core.Vec3, heights [4]float64) {
	sin, cos := math.Sincos(s.heading)
	for i, p := range s.samples {
		ox := p.X*cos - p.Z*sin
		oz := p.X*sin + p.Z*cos
		h := sampleAt(water, s.pos.X+ox, s.pos.Z+oz)
		heights[i] = h

		depth := h - (s.pos.Y + p.Y)
		if depth <= 0 {
			continue
		}
		f := core.Vec3{Y: depth * s.stats.Displacement * hull}
		force = force.Add(f)
		torque = torque.Add(core.Vec3{X: ox, Y: p.Y, Z: oz}.Cross(f))
	}
	return force, torque, heights
}

// clampHorizontalSpeed caps the (x, z) speed to a class- and wind-dependent
// maximum; the vertical buoyancy component is left alone.
func (s *Ship) clampHorizontalSpeed(posMult, knots float64) {
	windFactor := core.Clamp(knots/windSpeedRef, 0.15, 1)
	limit := s.stats.Speed * posMult * windFactor
	h := s.vel.HorizontalLength()
	if h <= limit || h == 0 {
		return
	}
	r := limit / h
	s.vel.X *= r
	s.vel.Z *= r
}

// updateAttitude blends wave-following pitch/roll (from the height difference
// across the bow/stern and port/starboard samples) with the angular-velocity
// driven tilt. Yaw is untouched; heading is integrated separately.
func (s *Ship) updateAttitude(dt float64, heights [4]float64) {
	s.tiltPitch += s.angVel.Z * dt
	s.tiltRoll += s.angVel.X * dt

	lengthSpan := s.samples[sampleBow].X - s.samples[sampleStern].X
	widthSpan := s.samples[sampleStarboard].Z - s.samples[samplePort].Z
	pitchWave := math.Atan2(heights[sampleBow]-heights[sampleStern], lengthSpan)
	rollWave := math.Atan2(heights[samplePort]-heights[sampleStarboard], widthSpan)

	s.pitch = waveBlend*pitchWave + (1-waveBlend)*s.tiltPitch
	s.roll = waveBlend*rollWave + (1-waveBlend)*s.tiltRoll
}

// adjustTrim eases the sail toward the optimal trim for the current wind
// angle on a slower cadence, moving a fraction of the remaining distance per
// step so the sail visibly lags the wind.
func (s *Ship) adjustTrim(dt float64, w *wind.Model) {
	s.trimClock += dt
	for s.trimClock >= trimInterval {
		s.trimClock -= trimInterval
		signed := core.WrapSigned(w.Direction() - s.heading)
		target := core.Clamp(signed/math.Pi, -1, 1)
		s.prevTrim = s.trim
		s.trim += (target - s.trim) * trimRate
	}
}

func sampleAt(water HeightSampler, x, z float64) float64 {
	if water == nil {
		return 0
	}
	return water.SampleHeight(x, z)
}
