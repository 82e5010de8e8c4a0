//go:build ebiten

// The GPU-facing half of this package: uploading pixel bytes to an
// ebiten texture and drawing it scaled, grounded on the teacher's
// GridPainter but driven directly by RGBA bytes rather than a
// binary/palette indexed cell buffer.
package render

import "github.com/hajimehoshi/ebiten/v2"

// RasterPainter owns the GPU-side texture backing a raster blit and
// reuses it across frames instead of reallocating every Draw call.
type RasterPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewRasterPainter allocates a painter for a raster of size w*h.
func NewRasterPainter(w, h int) *RasterPainter {
	return &RasterPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads rgba (tightly packed, row-major, 4 bytes per pixel) into
// the painter's texture and draws it onto dst scaled by scale.
func (rp *RasterPainter) Blit(dst *ebiten.Image, rgba []byte, scale int) {
	if len(rgba) != 4*rp.w*rp.h {
		return
	}
	rp.img.ReplacePixels(rgba)

	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(rp.img, op)
}

// Size returns the dimensions of the underlying raster.
func (rp *RasterPainter) Size() (int, int) { return rp.w, rp.h }
