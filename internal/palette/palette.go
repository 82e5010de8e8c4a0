// Package palette implements component B of the growth engine: a color
// multiset that supports popping the entry closest to a target, a uniform
// random entry, or the last entry, while keeping a k-d tree and a linear
// pool consistent with each other.
package palette

import (
	"image"
	"math"

	"github.com/pkg/errors"

	colorpkg "growthimage/internal/color"
	"growthimage/internal/palette/fromimage"
	"growthimage/pkg/core"
	"growthimage/pkg/kdtree"
)

// Palette owns a k-d tree over the initial color multiset plus a linear
// pool of the same colors, kept consistent on every pop: len(pool) ==
// tree.NumAvailable() always holds.
type Palette struct {
	tree *kdtree.Tree[colorpkg.Color]
	pool []colorpkg.Color
}

// New builds a Palette over the provided color multiset. colors must be
// non-empty.
func New(colors []colorpkg.Color) (*Palette, error) {
	if len(colors) == 0 {
		return nil, errors.New("palette: cannot build from an empty color set")
	}
	pool := make([]colorpkg.Color, len(colors))
	copy(pool, colors)
	return &Palette{
		tree: kdtree.Build(colors),
		pool: pool,
	}, nil
}

// NewUniform builds a Palette sized to at least minCount using a
// deterministic cube-root grid over RGB space (§4.B GenerateUniformPalette).
func NewUniform(minCount int) (*Palette, error) {
	return New(GenerateUniform(minCount))
}

// GenerateUniform deterministically enumerates a set of colors
// approximately uniformly covering the RGB cube, sized to at least n by
// rounding the cube root of n up to the nearest integer grid dimension.
// The grid may contain more than n colors; it is never smaller.
func GenerateUniform(n int) []colorpkg.Color {
	if n < 1 {
		n = 1
	}
	m := int(math.Ceil(math.Cbrt(float64(n))))
	if m < 1 {
		m = 1
	}

	step := 255.0
	if m > 1 {
		step = 255.0 / float64(m-1)
	}

	colors := make([]colorpkg.Color, 0, m*m*m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			for k := 0; k < m; k++ {
				if m == 1 {
					colors = append(colors, colorpkg.New(127.5, 127.5, 127.5))
					continue
				}
				colors = append(colors, colorpkg.New(
					float64(i)*step,
					float64(j)*step,
					float64(k)*step,
				))
			}
		}
	}
	return colors
}

// FromImageClusters supplements the uniform generator with an
// image-derived palette: it extracts up to k dominant color clusters from
// img (weighted by cluster population) and expands them into a multiset
// of at least targetCount colors, so the usual size>=width*height
// invariant still holds regardless of which source seeded the palette.
func FromImageClusters(img image.Image, k, targetCount int) (*Palette, error) {
	weighted := fromimage.Extract(img, k)
	if len(weighted) == 0 {
		return NewUniform(targetCount)
	}
	return New(expandWeighted(weighted, targetCount))
}

func expandWeighted(weighted []fromimage.WeightedColor, targetCount int) []colorpkg.Color {
	if targetCount < len(weighted) {
		targetCount = len(weighted)
	}
	totalWeight := 0.0
	for _, w := range weighted {
		totalWeight += w.Weight
	}
	if totalWeight <= 0 {
		totalWeight = float64(len(weighted))
	}

	counts := make([]int, len(weighted))
	assigned := 0
	for i, w := range weighted {
		n := int(math.Round(w.Weight / totalWeight * float64(targetCount)))
		if n < 1 {
			n = 1
		}
		counts[i] = n
		assigned += n
	}
	if assigned < targetCount {
		largest := 0
		for i := 1; i < len(counts); i++ {
			if counts[i] > counts[largest] {
				largest = i
			}
		}
		counts[largest] += targetCount - assigned
	}

	colors := make([]colorpkg.Color, 0, targetCount)
	for i, w := range weighted {
		for n := 0; n < counts[i]; n++ {
			colors = append(colors, w.Color)
		}
	}
	return colors
}

// Len reports the number of colors still available to pop. It always
// equals the underlying tree's available count.
func (p *Palette) Len() int {
	return p.tree.NumAvailable()
}

// PopClosest removes and returns the available color nearest target.
// epsilon is accepted for API parity with §4.A's tolerance hook but, per
// the source behavior, never changes which color is popped.
func (p *Palette) PopClosest(target colorpkg.Color, epsilon float64) colorpkg.Color {
	got := p.tree.PopClosestWithTolerance(target, epsilon)
	p.removeFromPool(got)
	return got
}

// PopRandom removes and returns a uniformly random available color.
func (p *Palette) PopRandom(rng *core.RNG) colorpkg.Color {
	idx := rng.IntN(len(p.pool))
	value := p.pool[idx]
	last := len(p.pool) - 1
	p.pool[idx] = p.pool[last]
	p.pool = p.pool[:last]
	// value is present in the tree with distance 0 to itself, so the
	// branch-and-bound search returns exactly this leaf (§4.B).
	p.tree.PopClosest(value)
	return value
}

// PopBack removes and returns the last color in pool order.
func (p *Palette) PopBack() colorpkg.Color {
	last := len(p.pool) - 1
	value := p.pool[last]
	p.pool = p.pool[:last]
	p.tree.PopClosest(value)
	return value
}

func (p *Palette) removeFromPool(value colorpkg.Color) {
	for i, c := range p.pool {
		if c == value {
			last := len(p.pool) - 1
			p.pool[i] = p.pool[last]
			p.pool = p.pool[:last]
			return
		}
	}
}
