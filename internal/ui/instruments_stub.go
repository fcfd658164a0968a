//go:build !ebiten

package ui

import "sailsim/internal/sim"

// Instruments is a no-op placeholder used when the ebiten build tag is absent.
type Instruments struct{}

// NewInstruments constructs a stub overlay.
func NewInstruments(*sim.World) *Instruments { return &Instruments{} }

// Update is a no-op in headless builds.
func (ins *Instruments) Update() {}

// Draw is a no-op placeholder.
func (ins *Instruments) Draw(any) {}
