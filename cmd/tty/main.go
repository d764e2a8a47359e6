package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/Garsondee/Invaders/internal/game"
	"github.com/Garsondee/Invaders/internal/terminal"
	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := game.DefaultConfig()
	var autopilot bool
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed for the round")
	flag.BoolVar(&cfg.DoubleCooldownDecrement, "double-cooldown", cfg.DoubleCooldownDecrement, "player moves also drain the fire cooldown")
	flag.IntVar(&cfg.DespawnMargin, "despawn-margin", cfg.DespawnMargin, "px past the edge before a projectile is dropped (negative disables)")
	flag.BoolVar(&autopilot, "autopilot", false, "let the bot play")
	flag.Parse()

	if err := run(cfg, autopilot); err != nil {
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg game.Config, autopilot bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	cols, rows := terminal.ScreenSize(cfg)
	if w, h := screen.Size(); w < cols || h < rows {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, cols, rows)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sh := terminal.New(screen, game.NewSimulation(cfg, nil))
	if autopilot {
		sh.EnableAutopilot()
	}
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
