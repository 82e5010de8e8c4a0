// Package growth implements component D, the GrowthDriver: the single
// orchestrator that ties the Frontier, Palette, Raster, and FieldSources
// together into a deterministic pixel-by-pixel growth process.
package growth

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	colorpkg "growthimage/internal/color"
	"growthimage/internal/field"
	"growthimage/internal/frontier"
	"growthimage/internal/palette"
	"growthimage/internal/raster"
	"growthimage/pkg/core"
)

type point struct{ i, j int }

// Driver is the GrowthDriver: it owns the raster, the frontier, the
// palette, its rng, and its field sources, and advances the raster one
// pixel per Iterate call.
type Driver struct {
	cfg Config

	raster   *raster.Raster
	frontier *frontier.Frontier
	palette  *palette.Palette
	rng      *core.RNG
	perlin   *field.Perlin
	goal     *field.GoalAttractor

	previousLoc point
	hasPrevious bool
}

// New constructs a Driver from cfg, validating it first. The palette is
// seeded with a uniform enumeration sized to width*height, per §4.B.
func New(cfg Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pal, err := palette.NewUniform(cfg.Width * cfg.Height)
	if err != nil {
		return nil, wrapf(err, "growth: building initial palette")
	}
	return newDriver(cfg, pal)
}

// NewWithPalette constructs a Driver using a caller-supplied palette
// (for example one built from FromImageClusters) instead of the default
// uniform enumeration.
func NewWithPalette(cfg Config, pal *palette.Palette) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if need := cfg.Width * cfg.Height; pal.Len() < need {
		return nil, errors.Errorf("growth: palette has %d colors, need %d for a %dx%d raster", pal.Len(), need, cfg.Width, cfg.Height)
	}
	return newDriver(cfg, pal)
}

func newDriver(cfg Config, pal *palette.Palette) (*Driver, error) {
	d := &Driver{cfg: cfg, palette: pal}
	d.rng = core.NewRNG(cfg.Seed)
	d.raster = raster.New(cfg.Width, cfg.Height)
	d.perlin = field.NewPerlin(d.rng.Sub(), cfg.PerlinOctaves, cfg.PerlinGridSize)
	d.goal = field.NewGoalAttractor(d.rng.Sub(), d.raster, cfg.Width, cfg.Height)
	d.Reset()
	return d, nil
}

// Seed reseeds the driver's rng in place, without touching raster state.
// It mirrors the source's ability to re-seed an existing instance before
// a fresh Reset (§12 supplemented feature).
func (d *Driver) Seed(seed int64) {
	d.cfg.Seed = seed
	d.rng = core.NewRNG(seed)
}

// Reset clears the raster, the filled grid, and the frontier, then seeds
// a single uniformly random frontier point to start growth from.
func (d *Driver) Reset() {
	d.raster.Clear()
	d.frontier = frontier.New()
	d.previousLoc = point{}
	d.hasPrevious = false

	start := point{i: d.rng.IntN(d.cfg.Width), j: d.rng.IntN(d.cfg.Height)}
	d.frontier.Insert(frontier.Point{I: start.i, J: start.j})
}

// Width returns the raster width.
func (d *Driver) Width() int { return d.cfg.Width }

// Height returns the raster height.
func (d *Driver) Height() int { return d.cfg.Height }

// FrontierSize reports the number of candidate pixels awaiting a choice.
func (d *Driver) FrontierSize() int { return d.frontier.Size() }

// PaletteRemaining reports the number of colors left in the palette.
func (d *Driver) PaletteRemaining() int { return d.palette.Len() }

// Raster exposes the underlying pixel store for rendering and encoding.
func (d *Driver) Raster() *raster.Raster { return d.raster }

// FrontierPoints exposes the current frontier membership as plain (i, j)
// pairs, for a debug overlay. Callers must not mutate the result.
func (d *Driver) FrontierPoints() [][2]int {
	pts := d.frontier.Points()
	out := make([][2]int, len(pts))
	for i, p := range pts {
		out[i] = [2]int{p.I, p.J}
	}
	return out
}

// Goal reports the goal-attractor's current target and whether one has
// been sampled yet. It is meaningful only under PreferenceLocation.
func (d *Driver) Goal() (i, j int, ok bool) {
	return d.goal.Goal()
}

// Iterate performs one growth step and reports whether the frontier is
// still non-empty afterward.
func (d *Driver) Iterate() bool {
	loc := d.chooseLocation()
	color := d.chooseColor(loc)

	d.raster.Set(loc.i, loc.j, color)
	d.extendFrontier(loc)
	d.frontier.Remove(frontier.Point{I: loc.i, J: loc.j})

	d.previousLoc = loc
	d.hasPrevious = true

	return d.frontier.Size() > 0
}

// IterateUntilDone runs Iterate until the frontier empties, invoking
// onProgress (if non-nil) with the running filled-pixel count after
// every iteration, for callers that want periodic progress reporting
// without owning the loop themselves.
func (d *Driver) IterateUntilDone(onProgress func(filled int)) {
	filled := 0
	for d.frontier.Size() > 0 {
		d.Iterate()
		filled++
		if onProgress != nil {
			onProgress(filled)
		}
	}
}

func (d *Driver) chooseLocation() point {
	switch d.cfg.LocationChoice {
	case LocationSnaking:
		return d.chooseSnakingLocation()
	case LocationSequential:
		return d.chooseSequentialLocation()
	case LocationPreferred:
		return d.choosePreferredLocation()
	default:
		return d.chooseRandomLocation()
	}
}

func (d *Driver) chooseRandomLocation() point {
	p := d.frontier.PopRandom(d.rng)
	return point{i: p.I, j: p.J}
}

func (d *Driver) choosePreferredLocation() point {
	n := d.cfg.PreferredLocationIterations
	bestIndex := -1
	bestPreference := -math.MaxFloat64
	for i := 0; i < n; i++ {
		idx := d.rng.IntN(d.frontier.Size())
		if cand := d.frontier.At(idx); cand.Preference > bestPreference {
			bestPreference = cand.Preference
			bestIndex = idx
		}
	}
	p := d.frontier.PopAt(bestIndex)
	return point{i: p.I, j: p.J}
}

func (d *Driver) chooseSequentialLocation() point {
	if !d.hasPrevious {
		return point{0, 0}
	}
	if d.previousLoc.i == d.cfg.Width-1 {
		return point{0, d.previousLoc.j + 1}
	}
	return point{d.previousLoc.i + 1, d.previousLoc.j}
}

func (d *Driver) chooseSnakingLocation() point {
	if !d.hasPrevious {
		return d.chooseRandomLocation()
	}
	var free []point
	for i := 0; i < 4; i++ {
		di := (i%2)*2 - 1
		dj := (i/2)*2 - 1
		cand := point{d.previousLoc.i + di, d.previousLoc.j + dj}
		if d.raster.InBounds(cand.i, cand.j) && !d.raster.Filled(cand.i, cand.j) {
			free = append(free, cand)
		}
	}
	if len(free) == 0 {
		return d.chooseRandomLocation()
	}
	next := free[d.rng.IntN(len(free))]
	d.frontier.Remove(frontier.Point{I: next.i, J: next.j})
	return next
}

func (d *Driver) chooseColor(loc point) colorpkg.Color {
	switch d.cfg.ColorChoice {
	case ColorSequential:
		return d.palette.PopBack()
	case ColorPerlin:
		return d.choosePerlinColor(loc)
	default:
		return d.chooseNearestColor(loc)
	}
}

func (d *Driver) chooseNearestColor(loc point) colorpkg.Color {
	var rs, gs, bs []float64
	d.forEachNeighbor(loc, func(n point) {
		if d.raster.Filled(n.i, n.j) {
			c := d.raster.At(n.i, n.j)
			rs = append(rs, c.R)
			gs = append(gs, c.G)
			bs = append(bs, c.B)
		}
	})
	if len(rs) == 0 {
		return d.palette.PopRandom(d.rng)
	}
	mean := colorpkg.New(stat.Mean(rs, nil), stat.Mean(gs, nil), stat.Mean(bs, nil))
	return d.palette.PopClosest(mean, d.cfg.Epsilon)
}

func (d *Driver) choosePerlinColor(loc point) colorpkg.Color {
	v := 255 * (d.perlin.Eval(loc.i, loc.j) + 1) / 2
	return colorpkg.New(v, v, v)
}

func (d *Driver) choosePreference(p point) float64 {
	switch d.cfg.PreferenceChoice {
	case PreferencePerlin:
		return d.perlin.Eval(p.i, p.j)
	default:
		return d.goal.Preference(p.i, p.j)
	}
}

func (d *Driver) extendFrontier(loc point) {
	d.forEachNeighbor(loc, func(n point) {
		if d.frontier.Contains(n.i, n.j) || d.raster.Filled(n.i, n.j) {
			return
		}
		d.frontier.Insert(frontier.Point{
			I:          n.i,
			J:          n.j,
			Preference: d.choosePreference(n),
		})
	})
}

func (d *Driver) forEachNeighbor(loc point, f func(point)) {
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			n := point{loc.i + di, loc.j + dj}
			if d.raster.InBounds(n.i, n.j) {
				f(n)
			}
		}
	}
}
