//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"growthimage/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders a status panel to the right of the growth raster, showing
// the counters an observer needs to judge progress: frontier size and
// remaining palette colors.
type HUD struct {
	grower     core.Grower
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
}

// NewHUD constructs a HUD for the provided growth run and panel width.
func NewHUD(grower core.Grower, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{grower: grower, width: width, title: buildTitle(grower)}
}

// Width reports the panel's fixed width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update is a hook for future interactive HUD behavior; the panel's
// content is otherwise derived fresh from the grower on every Draw.
func (h *HUD) Update() {}

// Draw paints the HUD panel anchored to the right edge of the raster view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	size := h.grower.Size()
	height := size.H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	labelColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, labelColor)

	frontier := h.grower.FrontierSize()
	remaining := h.grower.PaletteRemaining()
	total := size.W * size.H

	lines := []string{
		fmt.Sprintf("size: %dx%d", size.W, size.H),
		fmt.Sprintf("frontier: %d", frontier),
		fmt.Sprintf("palette left: %d", remaining),
		fmt.Sprintf("cells: %d", total),
	}
	for _, line := range lines {
		y += lineHeight
		text.Draw(h.panel, line, face, panelPadding, y, labelColor)
	}

	if provider, ok := h.grower.(parameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			for _, param := range group.Params {
				y += lineHeight
				text.Draw(h.panel, param.Label+": "+param.Value, face, panelPadding, y, labelColor)
			}
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(grower core.Grower) string {
	if grower == nil {
		return "Status"
	}
	name := grower.Name()
	if name == "" {
		return "Status"
	}
	return strings.Title(name) + " Status"
}

const (
	panelPadding   = 12
	lineHeight     = 22
	headerBaseline = 18
)
