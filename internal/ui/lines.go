// Package ui draws the settings panel next to the automaton.
package ui

import (
	"fmt"

	"eca/internal/core"
)

// PanelWidth is the width in pixels of the HUD panel.
const PanelWidth = 180

// Lines lays out a parameter snapshot as text lines: the title, one header
// per group with its parameters below, and the status line last.
func Lines(title string, snap core.ParameterSnapshot, status string) []string {
	lines := []string{title}
	for _, g := range snap.Groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %-12s %s", p.Label, p.Value))
		}
	}
	if status != "" {
		lines = append(lines, "", status)
	}
	return lines
}
