//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 16
)

// HUD renders the settings panel to the right of the simulation view.
type HUD struct {
	width int
	panel *ebiten.Image
	lines []string
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Update replaces the text shown on the panel.
func (h *HUD) Update(lines []string) {
	if h == nil {
		return
	}
	h.lines = lines
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := panelPadding + (i+1)*lineHeight
		if y > height {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
