// Package color defines the RGB point type shared by the palette, the
// k-d tree, and the raster. Channels are tracked in the spec's native
// 0-255 range; conversion to/from github.com/lucasb-eyer/go-colorful and
// image/color is provided for everything that needs a different
// representation.
package color

import (
	imagecolor "image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a point in 3-D RGB space, channels in [0, 255].
type Color struct {
	R, G, B float64
}

// New constructs a Color from raw channel values.
func New(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// FromColorful converts a go-colorful Color (channels in [0, 1]) into the
// spec's [0, 255] representation.
func FromColorful(c colorful.Color) Color {
	return Color{R: c.R * 255, G: c.G * 255, B: c.B * 255}
}

// Colorful converts c into a go-colorful Color with channels in [0, 1].
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}

// RGBA converts c into an opaque image/color.RGBA, clamping and rounding
// each channel.
func (c Color) RGBA() imagecolor.RGBA {
	return imagecolor.RGBA{R: clampByte(c.R), G: clampByte(c.G), B: clampByte(c.B), A: 255}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Dims implements kdtree.Vector: colors are 3-dimensional points.
func (c Color) Dims() int { return 3 }

// Coord implements kdtree.Vector.
func (c Color) Coord(d int) float64 {
	switch d {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}
