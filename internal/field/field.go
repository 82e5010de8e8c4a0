// Package field implements component E: black-box scalar fields over
// integer 2-D positions, consumed by preference scoring and by the
// Perlin color policy. No library in the retrieved corpus provides
// Perlin noise, so this implementation is built directly on the
// standard library and seeded the same way the rest of the engine's
// deterministic sources are (via pkg/core.RNG.Sub).
package field

import (
	"math"

	"growthimage/pkg/core"
)

// Perlin is a deterministic, octave-summed 2-D Perlin noise field. Two
// Perlin values constructed from RNGs drawn from the same seed produce
// identical output for identical inputs.
type Perlin struct {
	octaves  int
	gridSize float64
	perm     [512]int
}

// NewPerlin builds a Perlin field with the given octave count and base
// grid cell size, using rng to shuffle its permutation table.
func NewPerlin(rng *core.RNG, octaves int, gridSize float64) *Perlin {
	if octaves < 1 {
		octaves = 1
	}
	if gridSize <= 0 {
		gridSize = 1
	}
	p := &Perlin{octaves: octaves, gridSize: gridSize}

	table := make([]int, 256)
	for i := range table {
		table[i] = i
	}
	for i := len(table) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		table[i], table[j] = table[j], table[i]
	}
	for i := 0; i < 512; i++ {
		p.perm[i] = table[i%256]
	}
	return p
}

// SetOctaves reconfigures the octave count used by Eval.
func (p *Perlin) SetOctaves(octaves int) {
	if octaves < 1 {
		octaves = 1
	}
	p.octaves = octaves
}

// SetGridSize reconfigures the base grid cell size used by Eval.
func (p *Perlin) SetGridSize(gridSize float64) {
	if gridSize <= 0 {
		gridSize = 1
	}
	p.gridSize = gridSize
}

// Eval returns a value in [-1, 1] for integer position (i, j), summing
// p.octaves layers of noise at doubling frequency and halving amplitude.
func (p *Perlin) Eval(i, j int) float64 {
	x, y := float64(i)/p.gridSize, float64(j)/p.gridSize
	var sum, amplitude, maxAmplitude float64
	amplitude = 1
	for o := 0; o < p.octaves; o++ {
		sum += p.noise2D(x, y) * amplitude
		maxAmplitude += amplitude
		x *= 2
		y *= 2
		amplitude *= 0.5
	}
	if maxAmplitude == 0 {
		return 0
	}
	v := sum / maxAmplitude
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return v
}

func (p *Perlin) noise2D(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := fade(xf)
	v := fade(yf)

	aa := p.perm[p.perm[xi]+yi]
	ab := p.perm[p.perm[xi]+yi+1]
	ba := p.perm[p.perm[xi+1]+yi]
	bb := p.perm[p.perm[xi+1]+yi+1]

	x1 := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	x2 := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)
	return lerp(x1, x2, v)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

// Occupied reports whether position (i, j) is already filled, so
// GoalAttractor knows when to resample a goal point that has been
// grown over.
type Occupied interface {
	Filled(i, j int) bool
}

// GoalAttractor scores frontier points by squared Euclidean distance to
// a wandering goal point, resampling the goal whenever it is unset or
// has been filled by the raster (§4.E).
type GoalAttractor struct {
	width, height int
	rng           *core.RNG
	raster        Occupied
	goalI, goalJ  int
	hasGoal       bool
}

// NewGoalAttractor builds a goal-seeking preference source over a raster
// of the given dimensions. raster is consulted to detect when the
// current goal has been filled in and needs resampling.
func NewGoalAttractor(rng *core.RNG, raster Occupied, width, height int) *GoalAttractor {
	return &GoalAttractor{width: width, height: height, rng: rng, raster: raster}
}

// Preference returns -(Δi² + Δj²) to the current goal point, resampling
// the goal first if it is unset or already filled.
func (g *GoalAttractor) Preference(i, j int) float64 {
	if !g.hasGoal || g.raster.Filled(g.goalI, g.goalJ) {
		g.resample()
	}
	di := float64(i - g.goalI)
	dj := float64(j - g.goalJ)
	return -(di*di + dj*dj)
}

// Goal reports the current goal position and whether one has been
// sampled yet, for read-only consumers such as a debug overlay.
func (g *GoalAttractor) Goal() (i, j int, ok bool) {
	return g.goalI, g.goalJ, g.hasGoal
}

func (g *GoalAttractor) resample() {
	g.goalI = g.rng.IntN(g.width)
	g.goalJ = g.rng.IntN(g.height)
	g.hasGoal = true
}
