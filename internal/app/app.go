//go:build ebiten

package app

import (
	"image/color"
	"slices"

	"eca/internal/render"
	"eca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface. R restarts and S
// reseeds; any other key cancels a running animation, and once it has
// stopped, exits.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale int
	keys  []ebiten.Key
}

// New constructs a Game for the provided session.
func New(session *Session, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := session.Sim().Size()
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(ui.PanelWidth),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	if g.session.Frame(command(g.keys)) {
		return ebiten.Termination
	}
	g.hud.Update(g.session.Lines())
	return nil
}

func command(keys []ebiten.Key) Command {
	switch {
	case slices.Contains(keys, ebiten.KeyR):
		return Restart
	case slices.Contains(keys, ebiten.KeyS):
		return Reseed
	case len(keys) > 0:
		return Cancel
	}
	return NoCommand
}

// Draw renders the current history and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	sim := g.session.Sim()
	size := sim.Size()
	g.painter.Blit(screen, sim.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Sim().Size()
	return s.W*g.scale + ui.PanelWidth, s.H * g.scale
}
