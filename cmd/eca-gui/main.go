//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"eca/internal/app"
	"eca/internal/core"
	"eca/internal/sims/elementary"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetPrefix("eca-gui: ")
	log.SetFlags(0)

	cfg := elementary.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	var (
		scale  = flag.Int("scale", 3, "pixel scale multiplier")
		width  = flag.Int("width", 256, "cells in a random initial configuration")
		height = flag.Int("height", 256, "rows of history kept on screen")
		tps    = flag.Int("tps", 60, "ticks per second")
	)
	flag.Parse()
	if err := cfg.ParseArgs(flag.Args()); err != nil {
		log.Fatal(err)
	}

	// Build halves the width since terminal cells are two columns wide.
	settings, initial, err := cfg.Build(2**width, *height, core.NewRNG(cfg.Seed))
	if err != nil {
		log.Fatal(err)
	}

	// A seeded random start is reproduced by Reset(seed); an explicit one by
	// Reset(0).
	seed := cfg.Seed
	if cfg.Initial != "" {
		seed = 0
	}
	auto := elementary.New(initial, settings, *height)
	game := app.New(app.NewSession(auto, settings.Delay, seed), *scale)

	ebiten.SetWindowTitle(fmt.Sprintf("eca: rule %d", settings.Rule))
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
