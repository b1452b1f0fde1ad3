// Command rulesweep runs every elementary rule from the same start and
// reports how each one settles.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"eca/internal/core"
	"eca/internal/sims/elementary"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	log.SetPrefix("rulesweep: ")
	log.SetFlags(0)

	steps := flag.Int("steps", 512, "generations to simulate per rule")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel rule evaluations")
	width := flag.Int("width", 63, "cells in the generated initial configuration")
	cyclicOnly := flag.Bool("cyclic", false, "only list rules that reached a cycle")
	var overrides kvList
	flag.Var(&overrides, "set", "override in key=value form (repeatable): initial, edges, seed")
	flag.Parse()

	cfg, err := configFrom(overrides, log.Printf)
	if err != nil {
		log.Fatal(err)
	}
	initial, err := startingCells(cfg, *width)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("surveying 256 rules from %s with %s edges, %d steps\n", initial.Bits(), cfg.Edges, *steps)
	results := elementary.SurveyAll(cfg.Edges, initial, *steps, *workers)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "rule\ttable\ttransient\tperiod\tdensity")
	for _, r := range results {
		if *cyclicOnly && !r.Cyclic() {
			continue
		}
		transient, period := "-", "-"
		if r.Cyclic() {
			transient = fmt.Sprint(r.Transient)
			period = fmt.Sprint(r.Period)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.3f\n", r.Rule, r.Rule.Table(), transient, period, r.Density)
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}
}

// configFrom applies key=value overrides on top of the defaults. Overrides
// that are unknown or invalid are reported through warn and skipped.
func configFrom(overrides []string, warn func(format string, args ...any)) (elementary.Config, error) {
	kv := make(map[string]string, len(overrides))
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			return elementary.Config{}, fmt.Errorf("override %q is not in key=value form", o)
		}
		kv[parts[0]] = parts[1]
	}
	cfg, err := elementary.ParseMap(kv)
	if err != nil {
		errs := []error{err}
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			errs = joined.Unwrap()
		}
		for _, e := range errs {
			warn("ignoring override %v", e)
		}
	}
	return cfg, nil
}

// startingCells uses the configured initial cells, a seeded random start, or
// a single live cell in the middle, in that order.
func startingCells(cfg elementary.Config, width int) (elementary.Cells, error) {
	if cfg.Initial != "" {
		return elementary.Parse(cfg.Initial)
	}
	if width < elementary.MinWidth {
		return nil, fmt.Errorf("%w: got width %d", elementary.ErrTooShort, width)
	}
	if cfg.Seed != 0 {
		return elementary.NewRandom(width, core.NewRNG(cfg.Seed)), nil
	}
	c := make(elementary.Cells, width)
	c[width/2] = true
	return c, nil
}
