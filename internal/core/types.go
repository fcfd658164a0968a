package core

import "math"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// WrapAngle normalizes an angle in radians into [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// WrapSigned normalizes an angle in radians into [-π, π).
func WrapSigned(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// Clamp restricts v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0, 1].
func Clamp01(v float64) float64 { return Clamp(v, 0, 1) }

// Lerp interpolates linearly between a and b by t.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }
