// Package fromimage supplements the spec's uniform palette generator with
// an image-derived one: it extracts dominant color clusters from a
// reference image instead of enumerating the RGB cube. It produces a
// weighted multiset of colors; it does not know about the palette's pop
// contracts.
package fromimage

import (
	"image"
	"math"

	"github.com/cenkalti/dominantcolor"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	colorpkg "growthimage/internal/color"
)

// WeightedColor pairs an extracted color with the population of sampled
// pixels it represents.
type WeightedColor struct {
	Color  colorpkg.Color
	Weight float64
}

// Extract returns up to k dominant color clusters of img, weighted by
// cluster population. It subsamples large images to keep k-means
// tractable, and falls back to dominantcolor's weighted candidates if
// clustering fails or the image has no opaque pixels.
func Extract(img image.Image, k int) []WeightedColor {
	if k <= 0 || img == nil {
		return nil
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	const maxSamples = 12000
	step := 1
	if width*height > maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0 * 255,
				float64(g16) / 65535.0 * 255,
				float64(b16) / 65535.0 * 255,
			})
		}
	}
	if len(dataset) == 0 {
		return seedFromDominant(img, k)
	}

	workK := min(max(k, 1), len(dataset))
	km := kmeans.New()
	cc, err := km.Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		return seedFromDominant(img, k)
	}

	out := make([]WeightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		out = append(out, WeightedColor{
			Color:  colorpkg.New(c.Center[0], c.Center[1], c.Center[2]),
			Weight: float64(len(c.Observations)),
		})
	}
	if len(out) == 0 {
		return seedFromDominant(img, k)
	}
	return out
}

func seedFromDominant(img image.Image, k int) []WeightedColor {
	candidates := dominantcolor.FindWeight(img, max(k, 1))
	out := make([]WeightedColor, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		col = col.Clamped()
		weight := c.Weight
		if weight <= 0 {
			weight = 1e-6
		}
		out = append(out, WeightedColor{
			Color:  colorpkg.FromColorful(col),
			Weight: weight,
		})
	}
	return out
}
