package growth

import "github.com/pkg/errors"

// Validate reports a wrapped, descriptive error for any configuration
// value the driver cannot run with. It never mutates c.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return errors.Errorf("growth: width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return errors.Errorf("growth: height must be positive, got %d", c.Height)
	}
	if c.PreferredLocationIterations <= 0 {
		return errors.Errorf("growth: preferred_location_iterations must be >= 1, got %d", c.PreferredLocationIterations)
	}
	if c.Epsilon < 0 {
		return errors.Errorf("growth: epsilon must be >= 0, got %v", c.Epsilon)
	}
	if c.PerlinOctaves <= 0 {
		return errors.Errorf("growth: perlin_octaves must be >= 1, got %d", c.PerlinOctaves)
	}
	if c.PerlinGridSize <= 0 {
		return errors.Errorf("growth: perlin_grid_size must be > 0, got %v", c.PerlinGridSize)
	}
	return nil
}

// wrapf is a small helper kept local to this package so driver.go's
// construction path reads the same way the config layer reports errors.
func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
