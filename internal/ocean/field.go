// Package ocean maintains the wave height field: a fixed-resolution grid over
// a square world footprint, recomputed each tick as a superposition of
// traveling sine components driven by the wind. The closed form keeps every
// tick O(resolution²) with no iterative solve, so the field is always
// well-defined and bounded for the ship physics that queries it every frame.
package ocean

import (
	"math"

	"sailsim/internal/core"
	"sailsim/internal/wind"
)

// Config fixes the grid resolution and world extent for the field's lifetime.
type Config struct {
	// Resolution is the number of cells along each side of the grid.
	Resolution int
	// Extent is the side length in world units of the square footprint,
	// centered at the origin.
	Extent float64
}

// DefaultConfig returns the standard field dimensions.
func DefaultConfig() Config {
	return Config{Resolution: 64, Extent: 512}
}

// Deterministic wave components. Weights sum to 1 so the field never exceeds
// MaxWaveHeight; storm terms get their own normalization when active.
const (
	baseFrequency = 0.018

	weightPrimary   = 0.42
	weightSecondary = 0.27
	weightTertiary  = 0.18
	weightCross     = 0.13

	stormWeightA = 0.10
	stormWeightB = 0.07
	stormWeightC = 0.05
)

// Field is the shared wave height grid: one writer (Tick) and any number of
// readers (SampleHeight) per frame.
type Field struct {
	cfg  Config
	grid *core.FloatGrid

	elapsed float64
	storm   bool

	scale     float64
	maxHeight float64
}

// New creates an empty field; all heights are zero until the first Tick.
func New(cfg Config) *Field {
	if cfg.Resolution <= 0 {
		cfg.Resolution = DefaultConfig().Resolution
	}
	if cfg.Extent <= 0 {
		cfg.Extent = DefaultConfig().Extent
	}
	return &Field{
		cfg:  cfg,
		grid: core.NewFloatGrid(cfg.Resolution, cfg.Resolution),
	}
}

// Size reports the grid dimensions.
func (f *Field) Size() core.Size { return core.Size{W: f.cfg.Resolution, H: f.cfg.Resolution} }

// Extent reports the world side length of the footprint.
func (f *Field) Extent() float64 { return f.cfg.Extent }

// Heights exposes the raw sample buffer for rendering.
func (f *Field) Heights() []float32 { return f.grid.Cells() }

// Elapsed reports accumulated simulated time.
func (f *Field) Elapsed() float64 { return f.elapsed }

// SetStorm toggles storm mode. Only subsequent Tick computations change.
func (f *Field) SetStorm(on bool) { f.storm = on }

// Storm reports whether storm mode is active.
func (f *Field) Storm() bool { return f.storm }

// MaxHeight returns the amplitude ceiling used by the latest Tick.
func (f *Field) MaxHeight() float64 { return f.maxHeight }

// Tick recomputes every cell from elapsed time and the current wind state.
func (f *Field) Tick(dt float64, w *wind.Model) {
	if dt > 0 {
		f.elapsed += dt
	}
	f.scale = WaveScale(w.Strength(), f.storm)
	f.maxHeight = MaxWaveHeight(w.Strength(), f.storm)

	dir := w.Vector()
	// Phase velocity grows with wind speed so heavier weather reads as faster,
	// steeper seas rather than just taller ones.
	speed := 0.4 + w.SpeedKnots()*0.06

	res := f.cfg.Resolution
	cell := f.cfg.Extent / float64(res)
	half := f.cfg.Extent / 2
	cells := f.grid.Cells()

	for zi := 0; zi < res; zi++ {
		wz := -half + (float64(zi)+0.5)*cell
		for xi := 0; xi < res; xi++ {
			wx := -half + (float64(xi)+0.5)*cell
			cells[f.grid.Index(xi, zi)] = float32(f.heightAt(wx, wz, f.elapsed, dir, speed))
		}
	}
}

func (f *Field) heightAt(x, z, t float64, dir core.Vec2, speed float64) float64 {
	k := f.scale * baseFrequency
	along := x*dir.X + z*dir.Z
	across := -x*dir.Z + z*dir.X

	h := weightPrimary * math.Sin(along*k-t*1.2*speed)
	h += weightSecondary * math.Sin((along*0.6+across*0.8)*k*1.7-t*1.6*speed)
	h += weightTertiary * math.Sin((along*0.9-across*0.4)*k*2.3-t*0.9*speed)
	h += weightCross * math.Sin(across*k*3.1-t*1.4*speed)

	norm := 1.0
	if f.storm {
		h += stormWeightA * math.Sin((along*1.3+across*1.1)*k*6.1-t*3.2*speed)
		h += stormWeightB * math.Sin((along-across*1.7)*k*7.9-t*4.5*speed)
		h += stormWeightC * math.Sin(along*k*9.7-t*5.3*speed+chop(x, z)*2*math.Pi)
		norm += stormWeightA + stormWeightB + stormWeightC
	}

	return h * f.maxHeight / norm
}

// chop is a stateless pseudo-random value in [0, 1) derived from the cell's
// world coordinates, used to decorrelate the highest-frequency storm term.
func chop(x, z float64) float64 {
	v := math.Sin(x*12.9898+z*78.233) * 43758.5453
	return v - math.Floor(v)
}

// SampleHeight returns the stored height for the cell containing the world
// point (x, z). Points outside the footprint clamp to the nearest edge cell,
// so the result is always finite; before the first Tick it is zero.
func (f *Field) SampleHeight(x, z float64) float64 {
	half := f.cfg.Extent / 2
	x = core.Clamp(x, -half, half)
	z = core.Clamp(z, -half, half)
	res := f.cfg.Resolution
	xi := int((x + half) / f.cfg.Extent * float64(res))
	zi := int((z + half) / f.cfg.Extent * float64(res))
	return float64(f.grid.At(xi, zi))
}
