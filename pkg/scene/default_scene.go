package scene

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// DefaultFloorY is the floor height of the 100x100 world viewport
const DefaultFloorY = -50.0

// DefaultLightX is where the light sits when not shifted
const DefaultLightX = 0.0

// ShiftedLightX is the light x position of the shifted-light variant
const ShiftedLightX = 20.0

type defaultOptions struct {
	lightX float64
	floorY float64
}

// Option customizes a built-in scene
type Option func(*defaultOptions)

// WithLightX moves the scene light along x
func WithLightX(x float64) Option {
	return func(o *defaultOptions) { o.lightX = x }
}

// WithFloorY overrides the floor height
func WithFloorY(y float64) Option {
	return func(o *defaultOptions) { o.floorY = y }
}

func applyOptions(opts []Option) defaultOptions {
	o := defaultOptions{lightX: DefaultLightX, floorY: DefaultFloorY}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// defaultLightColors returns the ambient, diffuse and specular intensities
// shared by the built-in scenes. Alpha is left at zero.
func defaultLightColors() (ambient, diffuse, specular core.Color) {
	return core.NewColor(0.12, 0.12, 0.12, 0),
		core.NewColor(0.32, 0.32, 0.32, 0),
		core.NewColor(0.4, 0.4, 0.4, 0)
}

// NewDefaultScene creates the nine-sphere mirror scene
func NewDefaultScene(opts ...Option) (*Scene, error) {
	o := applyOptions(opts)

	silver := core.NewColor(0.4, 0.4, 0.4, 1.0)
	white := core.NewColor(0.95, 0.95, 0.95, 1.0)

	ambient, diffuse, specular := defaultLightColors()

	// Listed in scan order
	return NewBuilder(o.floorY).
		SetLight(core.NewPoint3(o.lightX, 0, 10), ambient, diffuse, specular).
		AddSphere(45, 5, 20, 18, core.Blue, 0.5, 1.2).
		AddSphere(-50, 0, -50, 25, core.Yellow, 0.5, 1.2).
		AddSphere(3, 11, -11, 2, core.Red, 0.5, 1.2).
		AddSphere(-9, 11, -11, 10, core.Orange, 0.5, 1.2).
		AddSphere(50, 50, -40, 4, core.Yellow, 0.5, 1.2).
		AddSphere(48, 51, -68, 10, core.Red, 0.5, 1.1).
		AddSphere(78, 52, -70, 10, core.Green, 0.5, 1.2).
		AddSphere(15, 15, -20, 7, white, 0.5, 1.4).
		AddSphere(0, 0, -20, 6, silver, 0.7, 9).
		Build()
}

// NewShiftedLightScene is the default scene with its light moved to x=20
func NewShiftedLightScene(opts ...Option) (*Scene, error) {
	return NewDefaultScene(append([]Option{WithLightX(ShiftedLightX)}, opts...)...)
}

// NewFacingMirrorsScene places two perfect mirrors facing each other so
// rays bounce between them until the depth limit stops them
func NewFacingMirrorsScene(opts ...Option) (*Scene, error) {
	o := applyOptions(opts)
	ambient, diffuse, specular := defaultLightColors()

	return NewBuilder(o.floorY).
		SetLight(core.NewPoint3(o.lightX, 30, 10), ambient, diffuse, specular).
		AddSphere(-22, 0, -30, 15, core.Cyan, 1.0, 20).
		AddSphere(22, 0, -30, 15, core.Magenta, 1.0, 20).
		AddSphere(0, 30, -60, 8, core.YellowOrange, 0.3, 4).
		Build()
}
