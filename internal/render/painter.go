//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"sailsim/internal/ocean"
)

// WaterPainter updates a single RGBA image from the wave height field.
type WaterPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewWaterPainter allocates a painter for a grid of size w*h.
func NewWaterPainter(w, h int) *WaterPainter {
	wp := &WaterPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	wp.img = ebiten.NewImage(w, h)
	return wp
}

// Blit uploads the field's current heights into the painter image and draws
// it scaled onto dst.
func (wp *WaterPainter) Blit(dst *ebiten.Image, field *ocean.Field, scale int) {
	heights := field.Heights()
	if len(heights) != wp.w*wp.h {
		return
	}
	FillWaterRGBA(wp.buf, heights, field.MaxHeight(), field.Storm())
	wp.img.ReplacePixels(wp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(wp.img, op)
}

// Size returns the dimensions of the underlying image.
func (wp *WaterPainter) Size() (int, int) { return wp.w, wp.h }
