//go:build ebiten

package ui

import (
	"image/color"

	"growthimage/internal/core"
	"growthimage/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type frontierProvider interface {
	FrontierPoints() [][2]int
	Goal() (i, j int, ok bool)
}

// Overlay draws the live frontier set and, when the Location preference
// policy is active, the current goal point, on top of the base raster.
type Overlay struct {
	grower  core.Grower
	scale   int
	visible bool
	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs a new overlay instance for grower.
func NewOverlay(grower core.Grower, scale int) *Overlay {
	return &Overlay{grower: grower, scale: scale, visible: true}
}

// Update toggles overlay visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	provider, ok := o.grower.(frontierProvider)
	if !ok {
		return
	}
	size := o.grower.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	total := size.W * size.H
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	} else if len(o.maskBuf) != 4*total {
		o.maskBuf = make([]byte, 4*total)
	}

	goalI, goalJ, hasGoal := provider.Goal()
	render.FillFrontierRGBA(
		o.maskBuf, size.W, size.H,
		provider.FrontierPoints(),
		color.RGBA{R: 64, G: 164, B: 223, A: 140},
		[2]int{goalI, goalJ}, hasGoal,
		color.RGBA{R: 255, G: 90, B: 90, A: 220},
	)
	o.maskImg.ReplacePixels(o.maskBuf)

	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
