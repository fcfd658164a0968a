package render

import (
	"image/color"
	"math"
)

// Sea palette from trough to crest. Storm mode darkens the whole ramp.
var seaStops = []struct {
	t   float64
	col color.RGBA
}{
	{0.0, color.RGBA{R: 8, G: 28, B: 64, A: 255}},
	{0.35, color.RGBA{R: 16, G: 56, B: 110, A: 255}},
	{0.6, color.RGBA{R: 28, G: 96, B: 150, A: 255}},
	{0.85, color.RGBA{R: 70, G: 150, B: 180, A: 255}},
	{1.0, color.RGBA{R: 200, G: 225, B: 235, A: 255}},
}

// FillWaterRGBA converts wave heights into RGBA pixels in buf. Heights are
// normalized by maxHeight so the palette tracks the current sea state; a zero
// maxHeight (field not yet ticked) renders flat mid-tone water.
func FillWaterRGBA(buf []byte, heights []float32, maxHeight float64, storm bool) {
	if len(buf) < 4*len(heights) {
		return
	}
	dim := 1.0
	if storm {
		dim = 0.72
	}
	for i, h := range heights {
		t := 0.5
		if maxHeight > 0 {
			t = clamp01(float64(h)/(2*maxHeight) + 0.5)
		}
		col := seaColor(t)
		base := i * 4
		buf[base+0] = dimComponent(col.R, dim)
		buf[base+1] = dimComponent(col.G, dim)
		buf[base+2] = dimComponent(col.B, dim)
		buf[base+3] = col.A
	}
}

func seaColor(t float64) color.RGBA {
	t = clamp01(t)
	for i := 1; i < len(seaStops); i++ {
		curr := seaStops[i]
		if t <= curr.t {
			prev := seaStops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return seaStops[len(seaStops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func dimComponent(v uint8, factor float64) uint8 {
	return uint8(math.Round(float64(v) * factor))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
