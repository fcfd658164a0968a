//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"sailsim/internal/app"
	"sailsim/internal/core"
	"sailsim/internal/ship"
	"sailsim/internal/sim"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	class, ok := ship.ParseClass(cfg.Class)
	if !ok {
		log.Fatalf("unknown ship class %q", cfg.Class)
	}

	worldCfg := sim.DefaultConfig()
	worldCfg.Seed = cfg.Seed
	world := sim.New(worldCfg)
	world.SetStorm(cfg.Storm)
	world.Spawn(class, core.Vec3{})

	game := app.New(world, cfg.Scale)
	size := world.Ocean().Size()

	ebiten.SetWindowTitle("sailsim: " + class.String())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
