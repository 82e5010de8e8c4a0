package app

import (
	"flag"
	"strconv"
)

// Config collects the command-line knobs shared by the growth engine and
// the ebiten front-end (window scale, tick rate) that growth.Config has
// no business knowing about.
type Config struct {
	Preset string
	Seed   int64
	Scale  int
	TPS    int

	Width  int
	Height int

	Location   string
	Color      string
	Preference string

	PreferredLocationIterations int
	Epsilon                     float64
	PerlinOctaves               int
	PerlinGridSize              float64

	PaletteImage string
	PaletteK     int
}

// NewConfig returns the standard CLI defaults.
func NewConfig() Config {
	return Config{
		Preset:                       "growthimage",
		Seed:                         1337,
		Scale:                        4,
		TPS:                          60,
		Width:                        256,
		Height:                       256,
		Location:                     "random",
		Color:                        "nearest",
		Preference:                   "location",
		PreferredLocationIterations: 10,
		Epsilon:                      0,
		PerlinOctaves:                4,
		PerlinGridSize:               32,
		PaletteK:                     8,
	}
}

// Bind registers every field of c as a flag on fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "registered growth preset to run")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "PRNG seed (0 is used as-is like any other value; no time-derived seed is chosen)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale factor for the GUI window")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ebiten ticks per second")
	fs.IntVar(&c.Width, "w", c.Width, "raster width in pixels")
	fs.IntVar(&c.Height, "h", c.Height, "raster height in pixels")
	fs.StringVar(&c.Location, "location", c.Location, "location policy: random, snaking, sequential, preferred")
	fs.StringVar(&c.Color, "color", c.Color, "color policy: nearest, sequential, perlin")
	fs.StringVar(&c.Preference, "preference", c.Preference, "preference policy: location, perlin")
	fs.IntVar(&c.PreferredLocationIterations, "preferred-iterations", c.PreferredLocationIterations, "candidates sampled under the preferred location policy")
	fs.Float64Var(&c.Epsilon, "epsilon", c.Epsilon, "closest-color tolerance")
	fs.IntVar(&c.PerlinOctaves, "perlin-octaves", c.PerlinOctaves, "Perlin noise octave count")
	fs.Float64Var(&c.PerlinGridSize, "perlin-grid", c.PerlinGridSize, "Perlin noise base grid cell size")
	fs.StringVar(&c.PaletteImage, "palette-image", c.PaletteImage, "optional image path to derive the palette from")
	fs.IntVar(&c.PaletteK, "palette-k", c.PaletteK, "dominant color cluster count when deriving the palette from an image")
}

// GrowthParams packs the fields app.Config shares with growth.FromMap's
// key space, for constructing a growth.Config without importing growth
// into this package.
func (c Config) GrowthParams() map[string]string {
	return map[string]string{
		"w":                             strconv.Itoa(c.Width),
		"h":                             strconv.Itoa(c.Height),
		"seed":                          strconv.FormatInt(c.Seed, 10),
		"location":                      c.Location,
		"color":                         c.Color,
		"preference":                    c.Preference,
		"preferred_location_iterations": strconv.Itoa(c.PreferredLocationIterations),
		"epsilon":                       strconv.FormatFloat(c.Epsilon, 'f', -1, 64),
		"perlin_octaves":                strconv.Itoa(c.PerlinOctaves),
		"perlin_grid_size":              strconv.FormatFloat(c.PerlinGridSize, 'f', -1, 64),
	}
}
