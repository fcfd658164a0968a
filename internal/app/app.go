//go:build ebiten

package app

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sailsim/internal/core"
	"sailsim/internal/render"
	"sailsim/internal/ship"
	"sailsim/internal/sim"
	"sailsim/internal/ui"
)

// Game adapts a sim.World to the ebiten.Game interface: it gathers input,
// advances the world with wall-clock dt and draws the water and ships.
type Game struct {
	world       *sim.World
	painter     *render.WaterPainter
	instruments *ui.Instruments
	clock       *core.FrameClock

	pixel *ebiten.Image

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided world.
func New(world *sim.World, scale int) *Game {
	size := world.Ocean().Size()
	g := &Game{
		world:       world,
		painter:     render.NewWaterPainter(size.W, size.H),
		instruments: ui.NewInstruments(world),
		clock:       core.NewFrameClock(0.25),
		scale:       scale,
	}
	g.pixel = ebiten.NewImage(1, 1)
	g.pixel.Fill(color.White)
	return g
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.RandomizeWind()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.world.SetStorm(!g.world.Storm())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		g.world.SetWindStrength(g.world.Wind().Strength() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.world.SetWindStrength(g.world.Wind().Strength() + 1)
	}
	g.handleDamageKeys()

	g.world.SetInput(0, ship.Input{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	})

	g.instruments.Update()

	dt := g.clock.Tick()
	switch {
	case g.tickOnce:
		g.world.Step(1.0 / 60)
		g.tickOnce = false
	case !g.paused:
		g.world.Step(dt)
	}
	return nil
}

// handleDamageKeys maps the number row onto the four damage systems so a
// damage-control collaborator can be exercised without a combat layer.
func (g *Game) handleDamageKeys() {
	ships := g.world.Ships()
	if len(ships) == 0 {
		return
	}
	d := ships[0].Damage()
	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		d.Hull -= 0.25
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		d.Sail -= 0.25
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		d.Mast -= 0.25
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		d.Rudder -= 0.25
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit0) {
		d = ship.FullIntegrity()
		changed = true
	}
	if changed {
		g.world.SetShipDamage(0, d.Clamped())
	}
}

// Draw renders the water, the ships and the instrument overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Ocean(), g.scale)
	for _, s := range g.world.Ships() {
		g.drawShip(screen, s)
	}
	g.instruments.Draw(screen)
}

func (g *Game) drawShip(screen *ebiten.Image, s *ship.Ship) {
	extent := g.world.Ocean().Extent()
	size := g.world.Ocean().Size()
	span := float64(size.W * g.scale)

	pos := s.Position()
	sx := (pos.X + extent/2) / extent * span
	sy := (pos.Z + extent/2) / extent * span

	length := s.Stats().HullLength / extent * span
	if length < 6 {
		length = 6
	}
	nx := math.Cos(s.Heading())
	ny := math.Sin(s.Heading())

	hull := color.RGBA{R: 120, G: 80, B: 40, A: 255}
	if s.Damage().Hull <= 0 {
		hull = color.RGBA{R: 60, G: 50, B: 45, A: 255}
	}
	g.line(screen, sx-nx*length/2, sy-ny*length/2, sx+nx*length/2, sy+ny*length/2, 3, hull)
	// Bow marker so the heading reads at a glance.
	g.line(screen, sx+nx*length/2, sy+ny*length/2, sx+nx*length/2-ny*3-nx*3, sy+ny*length/2+nx*3-ny*3, 2, hull)
	g.line(screen, sx+nx*length/2, sy+ny*length/2, sx+nx*length/2+ny*3-nx*3, sy+ny*length/2-nx*3-ny*3, 2, hull)
}

func (g *Game) line(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
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
	screen.DrawImage(g.pixel, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.world.Ocean().Size()
	return size.W * g.scale, size.H * g.scale
}
