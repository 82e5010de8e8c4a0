package growth

import "strconv"

// LocationChoice selects how Iterate picks the next pixel to fill.
type LocationChoice uint8

const (
	LocationRandom LocationChoice = iota
	LocationSnaking
	LocationSequential
	LocationPreferred
)

// ColorChoice selects how Iterate assigns a color to the chosen pixel.
type ColorChoice uint8

const (
	ColorNearest ColorChoice = iota
	ColorSequential
	ColorPerlin
)

// PreferenceChoice selects how newly discovered frontier points are
// scored for the Preferred location policy.
type PreferenceChoice uint8

const (
	PreferenceLocation PreferenceChoice = iota
	PreferencePerlin
)

// Config controls a Driver's dimensions, seed, and policy selection.
type Config struct {
	Width  int
	Height int
	Seed   int64

	LocationChoice   LocationChoice
	ColorChoice      ColorChoice
	PreferenceChoice PreferenceChoice

	PreferredLocationIterations int
	Epsilon                     float64

	PerlinOctaves  int
	PerlinGridSize float64
}

// DefaultConfig returns the standard configuration: a 256x256 growth run
// with Random location, Nearest color, and Location preference.
func DefaultConfig() Config {
	return Config{
		Width:                        256,
		Height:                       256,
		Seed:                         1337,
		LocationChoice:               LocationRandom,
		ColorChoice:                  ColorNearest,
		PreferenceChoice:             PreferenceLocation,
		PreferredLocationIterations: 10,
		Epsilon:                      0,
		PerlinOctaves:                4,
		PerlinGridSize:               32,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs), leaving defaults in place for anything absent or malformed.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["location"]; ok {
		if lc, ok := parseLocationChoice(v); ok {
			c.LocationChoice = lc
		}
	}
	if v, ok := cfg["color"]; ok {
		if cc, ok := parseColorChoice(v); ok {
			c.ColorChoice = cc
		}
	}
	if v, ok := cfg["preference"]; ok {
		if pc, ok := parsePreferenceChoice(v); ok {
			c.PreferenceChoice = pc
		}
	}
	if v, ok := cfg["preferred_location_iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.PreferredLocationIterations = parsed
		}
	}
	if v, ok := cfg["epsilon"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Epsilon = parsed
		}
	}
	if v, ok := cfg["perlin_octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.PerlinOctaves = parsed
		}
	}
	if v, ok := cfg["perlin_grid_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.PerlinGridSize = parsed
		}
	}
	return c
}

func parseLocationChoice(v string) (LocationChoice, bool) {
	switch v {
	case "random":
		return LocationRandom, true
	case "snaking":
		return LocationSnaking, true
	case "sequential":
		return LocationSequential, true
	case "preferred":
		return LocationPreferred, true
	default:
		return 0, false
	}
}

func parseColorChoice(v string) (ColorChoice, bool) {
	switch v {
	case "nearest":
		return ColorNearest, true
	case "sequential":
		return ColorSequential, true
	case "perlin":
		return ColorPerlin, true
	default:
		return 0, false
	}
}

func parsePreferenceChoice(v string) (PreferenceChoice, bool) {
	switch v {
	case "location":
		return PreferenceLocation, true
	case "perlin":
		return PreferencePerlin, true
	default:
		return 0, false
	}
}
