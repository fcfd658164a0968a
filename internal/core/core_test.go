package core

import (
	"math"
	"testing"
)

func TestWrapAngleRange(t *testing.T) {
	inputs := []float64{0, 1, -1, math.Pi, -math.Pi, 123.45, -7.3, 2 * math.Pi, -2 * math.Pi, 1e6}
	for _, in := range inputs {
		got := WrapAngle(in)
		if got < 0 || got >= 2*math.Pi {
			t.Fatalf("WrapAngle(%v) = %v, outside [0, 2π)", in, got)
		}
	}
	if got := WrapAngle(2*math.Pi + 0.5); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("WrapAngle(2π+0.5) = %v, want 0.5", got)
	}
}

func TestWrapSignedRange(t *testing.T) {
	for _, in := range []float64{0, 3, -3, 10, -10, 123.45, -7.3} {
		got := WrapSigned(in)
		if got < -math.Pi || got >= math.Pi {
			t.Fatalf("WrapSigned(%v) = %v, outside [-π, π)", in, got)
		}
	}
}

func TestFloatGridClampsCoords(t *testing.T) {
	g := NewFloatGrid(4, 3)
	g.Cells()[g.Index(3, 2)] = 9
	g.Cells()[g.Index(0, 0)] = 7

	if got := g.At(100, 100); got != 9 {
		t.Fatalf("At(100,100) = %v, want corner value 9", got)
	}
	if got := g.At(-5, -5); got != 7 {
		t.Fatalf("At(-5,-5) = %v, want corner value 7", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	got := x.Cross(y)
	if got != (Vec3{Z: 1}) {
		t.Fatalf("x × y = %+v, want +z", got)
	}
	if d := got.Dot(x); d != 0 {
		t.Fatalf("cross product not orthogonal to x: dot = %v", d)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same-seed RNGs diverged at draw %d", i)
		}
	}
}
