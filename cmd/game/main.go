package main

import (
	"flag"
	"log"

	"github.com/Garsondee/Invaders/internal/arcade"
	"github.com/Garsondee/Invaders/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := game.DefaultConfig()
	var autopilot bool
	flag.IntVar(&cfg.Width, "width", cfg.Width, "playfield width in px")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "playfield height in px")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed for the first round")
	flag.BoolVar(&cfg.DoubleCooldownDecrement, "double-cooldown", cfg.DoubleCooldownDecrement, "player moves also drain the fire cooldown")
	flag.IntVar(&cfg.DespawnMargin, "despawn-margin", cfg.DespawnMargin, "px past the edge before a projectile is dropped (negative disables)")
	flag.BoolVar(&autopilot, "autopilot", false, "start in demo mode")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	g := arcade.New(cfg, autopilot)
	ebiten.SetWindowTitle("Invaders")
	ebiten.SetWindowSize(g.WindowSize())
	ebiten.SetTPS(game.TicksPerSecond)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
