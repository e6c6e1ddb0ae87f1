package integrator

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along a primary ray
	RayColor(ray core.Ray, scene *scene.Scene) core.Color
}

// Config contains the integrator settings
type Config struct {
	// MaxDepth counts cast invocations per primary ray, including the one
	// that returns black. At most MaxDepth-1 surfaces are shaded, so the
	// default of 4 shades three, one fewer than a post-increment bound
	// would, and 1 renders black.
	MaxDepth int
}

// DefaultConfig returns the default recursion limit
func DefaultConfig() Config {
	return Config{MaxDepth: 4}
}
