package growth

import "growthimage/internal/core"

// Preset adapts a Driver to the core.Grower contract the GUI and CLI
// front-ends program against.
type Preset struct {
	d *Driver
}

// NewPreset wraps d as a core.Grower.
func NewPreset(d *Driver) *Preset { return &Preset{d: d} }

// Name identifies this preset in the registry and in HUD titles.
func (p *Preset) Name() string { return "growthimage" }

// Size reports the driver's raster dimensions.
func (p *Preset) Size() core.Size {
	return core.Size{W: p.d.Width(), H: p.d.Height()}
}

// Reset reseeds and restarts the wrapped driver.
func (p *Preset) Reset(seed int64) {
	p.d.Seed(seed)
	p.d.Reset()
}

// Iterate advances the driver by one pixel.
func (p *Preset) Iterate() bool { return p.d.Iterate() }

// RasterRGBA returns the current raster as packed RGBA bytes.
func (p *Preset) RasterRGBA() []byte { return p.d.Raster().RGBA() }

// FrontierSize reports the number of candidate pixels.
func (p *Preset) FrontierSize() int { return p.d.FrontierSize() }

// PaletteRemaining reports the number of colors left to assign.
func (p *Preset) PaletteRemaining() int { return p.d.PaletteRemaining() }

// FrontierPoints exposes the wrapped driver's frontier membership, for
// the debug overlay.
func (p *Preset) FrontierPoints() [][2]int { return p.d.FrontierPoints() }

// Goal exposes the wrapped driver's goal-attractor target, for the
// debug overlay.
func (p *Preset) Goal() (i, j int, ok bool) { return p.d.Goal() }

// Parameters reports the wrapped driver's configuration as a read-only
// snapshot, for the HUD panel.
func (p *Preset) Parameters() core.ParameterSnapshot {
	cfg := p.d.cfg
	param := func(key, label, value string) core.Parameter {
		return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
	}
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "policies",
				Params: []core.Parameter{
					param("location", "Location", locationChoiceName(cfg.LocationChoice)),
					param("color", "Color", colorChoiceName(cfg.ColorChoice)),
					param("preference", "Preference", preferenceChoiceName(cfg.PreferenceChoice)),
				},
			},
		},
	}
}

func locationChoiceName(c LocationChoice) string {
	switch c {
	case LocationSnaking:
		return "snaking"
	case LocationSequential:
		return "sequential"
	case LocationPreferred:
		return "preferred"
	default:
		return "random"
	}
}

func colorChoiceName(c ColorChoice) string {
	switch c {
	case ColorSequential:
		return "sequential"
	case ColorPerlin:
		return "perlin"
	default:
		return "nearest"
	}
}

func preferenceChoiceName(c PreferenceChoice) string {
	switch c {
	case PreferencePerlin:
		return "perlin"
	default:
		return "location"
	}
}

func init() {
	core.Register("growthimage", func(cfg map[string]string) core.Grower {
		c := FromMap(cfg)
		d, err := New(c)
		if err != nil {
			d, _ = New(DefaultConfig())
		}
		return NewPreset(d)
	})
}
