package ovd

import "github.com/pkg/errors"

// Config configures a Diagram at construction, in the same plain-struct,
// densely commented idiom the teacher uses for its own build configuration.
type Config struct {
	// FarRadius bounds the circular domain every site must lie strictly
	// inside. Three outer vertices are placed at three times this radius at
	// construction time (§3 Lifecycle).
	FarRadius float64
	// NBins is the number of bins per axis in the face grid used to seed
	// each insertion's search (internal/grid.New).
	NBins int
	// Debug, when true, runs the post-insertion invariant checker
	// (internal/checker) after every insertion and routes debugf output to
	// the standard logger.
	Debug bool
}

// DefaultConfig returns the configuration used by the testable-properties
// scenarios of §11: a far circle of radius 10 and a 50x50 face grid.
func DefaultConfig() Config {
	return Config{FarRadius: 10, NBins: 50, Debug: false}
}

// validate reports whether c describes a usable diagram.
func (c Config) validate() error {
	if c.FarRadius <= 0 {
		return errors.New("config: far radius must be positive")
	}
	if c.NBins < 1 {
		return errors.New("config: n_bins must be at least 1")
	}
	return nil
}
