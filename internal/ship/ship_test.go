package ship

import (
	"math"
	"testing"

	"sailsim/internal/core"
	"sailsim/internal/wind"
)

// flatWater is a HeightSampler with a constant surface height.
type flatWater float64

func (f flatWater) SampleHeight(x, z float64) float64 { return float64(f) }

func beamReachWind() *wind.Model {
	m := wind.New(1)
	m.SetDirection(0)
	m.SetStrength(wind.ModerateBreeze)
	m.SetFluctuation(0)
	return m
}

const stepDT = 1.0 / 60

// terminalSpeed sails a sloop on a beam reach over flat water until the
// horizontal speed settles, then returns it.
func terminalSpeed(t *testing.T, d Damage) float64 {
	t.Helper()
	w := beamReachWind()
	s := New(Sloop, core.Vec3{})
	s.SetHeading(math.Pi / 2)
	s.SetDamage(d)
	in := Input{Forward: true}
	for i := 0; i < 3000; i++ {
		s.Update(stepDT, w, flatWater(0), in)
	}
	return s.Velocity().HorizontalLength()
}

func TestSettlingFreezesVelocity(t *testing.T) {
	w := beamReachWind()
	s := New(Sloop, core.Vec3{Y: 5})
	in := Input{Forward: true}

	for i := 0; i < 5; i++ {
		s.Update(0.1, w, flatWater(0), in)
		if v := s.Velocity(); v != (core.Vec3{}) {
			t.Fatalf("velocity %+v changed during settling tick %d", v, i)
		}
	}
	if s.Settling() {
		t.Fatal("ship still settling after 0.5s of simulated time")
	}

	// Integration must begin on the very next tick.
	s.Update(0.1, w, flatWater(0), in)
	if v := s.Velocity(); v == (core.Vec3{}) {
		t.Fatal("velocity unchanged on first active tick")
	}
}

func TestSettlingPinsToSurface(t *testing.T) {
	s := New(Schooner, core.Vec3{Y: 12})
	w := beamReachWind()
	start := s.Position().Y
	s.Update(0.1, w, flatWater(0), Input{})
	if got := s.Position().Y; math.Abs(got) >= math.Abs(start) {
		t.Fatalf("settling did not move ship toward surface: %v -> %v", start, got)
	}
}

func settle(s *Ship, w *wind.Model, water HeightSampler) {
	for s.Settling() {
		s.Update(stepDT, w, water, Input{})
	}
}

func TestDamageSlowsTerminalSpeed(t *testing.T) {
	baseline := terminalSpeed(t, FullIntegrity())
	if baseline <= 0 {
		t.Fatalf("undamaged terminal speed %v, want > 0", baseline)
	}

	cases := []struct {
		name string
		d    Damage
	}{
		{"hull", Damage{Hull: 0.5, Sail: 1, Mast: 1, Rudder: 1}},
		{"sail", Damage{Hull: 1, Sail: 0.5, Mast: 1, Rudder: 1}},
		{"mast", Damage{Hull: 1, Sail: 1, Mast: 0.5, Rudder: 1}},
	}
	for _, c := range cases {
		if got := terminalSpeed(t, c.d); got >= baseline {
			t.Fatalf("%s at 0.5: terminal speed %v, want strictly below %v", c.name, got, baseline)
		}
	}
}

func TestRudderDamageSlowsTurning(t *testing.T) {
	turn := func(rudder float64) float64 {
		w := beamReachWind()
		s := New(Sloop, core.Vec3{})
		settle(s, w, flatWater(0))
		s.SetDamage(Damage{Hull: 1, Sail: 1, Mast: 1, Rudder: rudder})
		for i := 0; i < 60; i++ {
			s.Update(stepDT, w, flatWater(0), Input{Right: true})
		}
		return s.Heading()
	}

	intact := turn(1)
	damaged := turn(0.5)
	if damaged >= intact {
		t.Fatalf("rudder at 0.5 turned %v rad, intact %v rad; want strictly less", damaged, intact)
	}
	if math.Abs(damaged-intact/2) > 1e-9 {
		t.Fatalf("turn rate not proportional to rudder integrity: %v vs half of %v", damaged, intact)
	}
}

func TestHullZeroProducesNoBuoyancy(t *testing.T) {
	s := New(Brigantine, core.Vec3{})
	force, torque, _ := s.buoyancy(flatWater(10), 0)
	if force != (core.Vec3{}) {
		t.Fatalf("buoyant force %+v with hull integrity 0, want exactly zero", force)
	}
	if torque != (core.Vec3{}) {
		t.Fatalf("buoyant torque %+v with hull integrity 0, want exactly zero", torque)
	}

	force, _, _ = s.buoyancy(flatWater(10), 1)
	if force.Y <= 0 {
		t.Fatalf("submerged intact hull force %v, want > 0", force.Y)
	}
}

func TestSinkDepthTracksHullDamage(t *testing.T) {
	intact := New(Sloop, core.Vec3{})
	breached := New(Sloop, core.Vec3{})
	breached.SetDamage(Damage{Hull: 0, Sail: 1, Mast: 1, Rudder: 1})

	if intact.SinkDepth() != 0 {
		t.Fatalf("intact sink depth %v, want 0", intact.SinkDepth())
	}
	if breached.SinkDepth() <= intact.SinkDepth() {
		t.Fatalf("breached sink depth %v not greater than intact %v",
			breached.SinkDepth(), intact.SinkDepth())
	}
}

func TestReverseMovesBackward(t *testing.T) {
	w := beamReachWind()
	s := New(Sloop, core.Vec3{})
	settle(s, w, flatWater(0))
	for i := 0; i < 300; i++ {
		s.Update(stepDT, w, flatWater(0), Input{Backward: true})
	}
	forward := core.Vec2{X: math.Cos(s.Heading()), Z: math.Sin(s.Heading())}
	v := s.Velocity()
	if along := v.X*forward.X + v.Z*forward.Z; along >= 0 {
		t.Fatalf("along-heading velocity %v under reverse input, want < 0", along)
	}
}

func TestHorizontalSpeedClamp(t *testing.T) {
	w := wind.New(1)
	w.SetDirection(0)
	w.SetStrength(wind.Hurricane)
	w.SetFluctuation(0)

	s := New(Schooner, core.Vec3{})
	s.SetHeading(math.Pi * 105 / 180) // optimal point of sail
	for i := 0; i < 4000; i++ {
		s.Update(stepDT, w, flatWater(0), Input{Forward: true})
	}
	if got, limit := s.Velocity().HorizontalLength(), s.Stats().Speed; got > limit+1e-9 {
		t.Fatalf("horizontal speed %v exceeds class maximum %v", got, limit)
	}
}

func TestTrimEasesTowardTarget(t *testing.T) {
	w := beamReachWind()
	s := New(Sloop, core.Vec3{})
	settle(s, w, flatWater(0))
	s.SetHeading(math.Pi / 2)

	if s.Trim() != 0 {
		t.Fatalf("initial trim %v, want 0", s.Trim())
	}
	var prev float64
	for i := 0; i < 240; i++ {
		s.Update(stepDT, w, flatWater(0), Input{})
		trim := s.Trim()
		if trim < -1 || trim > 1 {
			t.Fatalf("trim %v outside [-1, 1]", trim)
		}
		if trim != prev && math.Abs(trim) < math.Abs(prev) {
			t.Fatalf("trim moved away from target: %v -> %v", prev, trim)
		}
		prev = trim
	}
	if prev == 0 {
		t.Fatal("trim never adjusted on a beam reach")
	}
}
