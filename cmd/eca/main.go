// Command eca runs an elementary (one-dimensional) cellular automaton in
// the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"eca/internal/app"
	"eca/internal/core"
	"eca/internal/sims/elementary"
	"eca/internal/terminal"
)

func main() {
	log.SetPrefix("eca: ")
	log.SetFlags(0)

	cfg := elementary.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <rule> [initial]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  rule     Wolfram code of the rule (0-255)\n")
		fmt.Fprintf(os.Stderr, "  initial  starting cells as 0s and 1s (default random, as wide as the terminal)\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if err := parseArgs(&cfg, flag.Args(), flag.Usage); err != nil {
		log.Fatal(err)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

// parseArgs reads the positional arguments. A usage error is logged before
// usage runs, since usage exits.
func parseArgs(cfg *elementary.Config, args []string, usage func()) error {
	err := cfg.ParseArgs(args)
	if errors.Is(err, elementary.ErrUsage) {
		log.Print(err)
		usage()
	}
	return err
}

func run(cfg elementary.Config) error {
	width, height := terminal.Size(os.Stdout)
	settings, initial, err := cfg.Build(width, height, core.NewRNG(cfg.Seed))
	if err != nil {
		return err
	}

	if cfg.Plain {
		_, err := app.Run(initial, settings, terminal.NewPlain(os.Stdout), terminal.NopInput{})
		return err
	}

	scr, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	// The terminal is restored before main prints any error.
	defer scr.Close()
	_, err = app.Run(initial, settings, scr, scr)
	return err
}
