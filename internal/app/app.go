//go:build ebiten

package app

import (
	"time"

	"growthimage/internal/core"
	"growthimage/internal/render"
	"growthimage/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a growth run to the ebiten.Game interface.
type Game struct {
	grower  core.Grower
	painter *render.RasterPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale       int
	paused      bool
	tickOnce    bool
	seed        int64
	stepsPerTic int
}

// New constructs a Game for the provided growth run. stepsPerTic pixels
// are grown per frame so even large rasters complete in a reasonable
// number of frames instead of one pixel per 60th of a second.
func New(grower core.Grower, scale int, seed int64) *Game {
	size := grower.Size()
	return &Game{
		grower:      grower,
		painter:     render.NewRasterPainter(size.W, size.H),
		overlay:     ui.NewOverlay(grower, scale),
		hud:         ui.NewHUD(grower, 220),
		scale:       scale,
		seed:        seed,
		stepsPerTic: 64,
	}
}

// Reset reinitializes the growth run with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.grower.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the growth run.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update()
	}

	if (!g.paused) || g.tickOnce {
		for i := 0; i < g.stepsPerTic; i++ {
			if !g.grower.Iterate() {
				break
			}
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current raster state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grower.RasterRGBA(), g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		size := g.grower.Size()
		g.hud.Draw(screen, size.W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size: the raster plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.grower.Size()
	width := s.W * g.scale
	if g.hud != nil {
		width += g.hud.Width()
	}
	return width, s.H * g.scale
}
