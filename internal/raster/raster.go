// Package raster implements the width x height pixel store: a plain 2-D
// array of RGB colors accessed by (x, y), rounded to 8-bit channels by
// RGBA and ToImage, plus the auxiliary filled grid
// that tracks which cells have been assigned a color. Encoding to a
// concrete image file format is explicitly out of scope here (§1).
package raster

import (
	"image"
	"image/color"

	colorpkg "growthimage/internal/color"
	"growthimage/pkg/core"
)

// Raster holds one RGB color per cell, recorded at most once per cell.
type Raster struct {
	width, height int
	pixels        []colorpkg.Color
	filled        *core.ByteGrid
}

// New allocates an unfilled raster of the given dimensions.
func New(width, height int) *Raster {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Raster{
		width:  width,
		height: height,
		pixels: make([]colorpkg.Color, width*height),
		filled: core.NewByteGrid(width, height),
	}
}

// Width returns the raster's width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the raster's height in pixels.
func (r *Raster) Height() int { return r.height }

// InBounds reports whether (x, y) lies within the raster.
func (r *Raster) InBounds(x, y int) bool { return r.filled.InBounds(x, y) }

// Filled reports whether (x, y) has already been assigned a color. It
// satisfies growthimage/internal/field.Occupied.
func (r *Raster) Filled(x, y int) bool {
	if !r.InBounds(x, y) {
		return false
	}
	return r.filled.Cells()[r.filled.Index(x, y)] != 0
}

// At returns the color written at (x, y). Unfilled cells read as the
// zero color.
func (r *Raster) At(x, y int) colorpkg.Color {
	return r.pixels[r.filled.Index(x, y)]
}

// Set records c at (x, y). It panics if the cell was already filled —
// a filled cell's color is immutable and every cell transitions
// unfilled to filled exactly once.
func (r *Raster) Set(x, y int, c colorpkg.Color) {
	idx := r.filled.Index(x, y)
	if r.filled.Cells()[idx] != 0 {
		panic("raster: cell already filled")
	}
	r.pixels[idx] = c
	r.filled.Cells()[idx] = 1
}

// Clear resets every cell to unfilled, for Reset semantics.
func (r *Raster) Clear() {
	for i := range r.pixels {
		r.pixels[i] = colorpkg.Color{}
	}
	r.filled.Clear()
}

// RGBA returns the raster's pixels as tightly packed 8-bit RGBA bytes in
// row-major order, suitable for blitting or for a PNG/BMP encoder the
// caller owns.
func (r *Raster) RGBA() []byte {
	out := make([]byte, 0, len(r.pixels)*4)
	for _, p := range r.pixels {
		rgba := p.RGBA()
		out = append(out, rgba.R, rgba.G, rgba.B, rgba.A)
	}
	return out
}

// ToImage adapts the raster to the standard image.Image interface. It
// is not an encoder — callers pass the result to whichever encoder
// (png, bmp, ...) they choose.
func (r *Raster) ToImage() image.Image {
	return &rasterImage{r: r}
}

type rasterImage struct{ r *Raster }

func (ri *rasterImage) ColorModel() color.Model { return color.RGBAModel }

func (ri *rasterImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, ri.r.width, ri.r.height)
}

func (ri *rasterImage) At(x, y int) color.Color {
	if !ri.r.InBounds(x, y) {
		return color.RGBA{}
	}
	return ri.r.At(x, y).RGBA()
}
