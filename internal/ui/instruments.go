//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"sailsim/internal/ship"
	"sailsim/internal/sim"
)

const (
	compassRadius  = 26
	panelPadding   = 8
	damageBarWidth = 64
)

// Instruments draws the compass-style wind indicator, ship readouts and the
// damage-control panel on top of the water view.
type Instruments struct {
	world   *sim.World
	visible bool

	pixel *ebiten.Image
}

// NewInstruments constructs the overlay for the provided world.
func NewInstruments(world *sim.World) *Instruments {
	ins := &Instruments{world: world, visible: true}
	ins.pixel = ebiten.NewImage(1, 1)
	ins.pixel.Fill(color.White)
	return ins
}

// Update handles overlay input.
func (ins *Instruments) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		ins.visible = !ins.visible
	}
}

// Draw renders the instruments onto the screen.
func (ins *Instruments) Draw(screen *ebiten.Image) {
	if !ins.visible || ins.world == nil {
		return
	}

	w := ins.world.Wind()
	bounds := screen.Bounds()
	cx := float64(bounds.Dx()) - compassRadius - panelPadding
	cy := float64(compassRadius + panelPadding)

	ins.drawCompass(screen, cx, cy, w.Direction())

	face := basicfont.Face7x13
	line := bounds.Dx() - 150
	y := compassRadius*2 + panelPadding*2
	status := fmt.Sprintf("%s %.0f kn", w.Strength(), w.SpeedKnots())
	if ins.world.Storm() {
		status += " STORM"
	}
	text.Draw(screen, status, face, line, y, color.White)

	ships := ins.world.Ships()
	if len(ships) == 0 {
		return
	}
	s := ships[0]
	y += 14
	text.Draw(screen, fmt.Sprintf("hdg %3.0f", s.Heading()*180/math.Pi), face, line, y, color.White)
	y += 14
	text.Draw(screen, fmt.Sprintf("spd %.1f", s.Velocity().HorizontalLength()), face, line, y, color.White)

	y += 10
	ins.drawDamage(screen, line, y, s.Damage())
}

func (ins *Instruments) drawCompass(screen *ebiten.Image, cx, cy, direction float64) {
	rim := color.RGBA{R: 200, G: 200, B: 210, A: 160}
	for i := 0; i < 24; i++ {
		a := float64(i) / 24 * 2 * math.Pi
		x1 := cx + math.Cos(a)*(compassRadius-2)
		y1 := cy + math.Sin(a)*(compassRadius-2)
		x2 := cx + math.Cos(a)*compassRadius
		y2 := cy + math.Sin(a)*compassRadius
		ins.drawLine(screen, x1, y1, x2, y2, 1, rim)
	}

	needle := color.RGBA{R: 240, G: 200, B: 80, A: 230}
	nx := math.Cos(direction)
	ny := math.Sin(direction)
	ins.drawLine(screen, cx-nx*compassRadius*0.4, cy-ny*compassRadius*0.4,
		cx+nx*compassRadius*0.9, cy+ny*compassRadius*0.9, 2, needle)
	ins.drawPoint(screen, cx, cy, 3, needle)
}

func (ins *Instruments) drawDamage(screen *ebiten.Image, x, y int, d ship.Damage) {
	face := basicfont.Face7x13
	parts := []struct {
		label string
		value float64
	}{
		{"hull", d.Hull},
		{"sail", d.Sail},
		{"mast", d.Mast},
		{"rudr", d.Rudder},
	}
	for _, p := range parts {
		y += 12
		text.Draw(screen, p.label, face, x, y, color.RGBA{R: 180, G: 180, B: 190, A: 255})
		v := p.value
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		bar := color.RGBA{R: uint8(220 - 160*v), G: uint8(70 + 150*v), B: 70, A: 220}
		ins.drawBar(screen, float64(x+36), float64(y-8), damageBarWidth*v, 8, bar)
	}
}

func (ins *Instruments) drawBar(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if ins.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(ins.pixel, op)
}

func (ins *Instruments) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if ins.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(ins.pixel, op)
}

func (ins *Instruments) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if ins.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(ins.pixel, op)
}
