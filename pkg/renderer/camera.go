package renderer

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Viewport is the world-space rectangle (X1,Y1)-(X2,Y2) mapped onto the canvas
type Viewport struct {
	X1, Y1 float64
	X2, Y2 float64
}

// NewViewport creates a viewport from two corners
func NewViewport(x1, y1, x2, y2 float64) Viewport {
	return Viewport{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// CenteredViewport returns a width x height viewport centered on the origin
func CenteredViewport(width, height float64) Viewport {
	return Viewport{X1: -width / 2, Y1: -height / 2, X2: width / 2, Y2: height / 2}
}

// Width returns the horizontal extent of the viewport
func (v Viewport) Width() float64 { return v.X2 - v.X1 }

// Height returns the vertical extent of the viewport
func (v Viewport) Height() float64 { return v.Y2 - v.Y1 }

// OrthographicCamera generates parallel rays along -z, one per pixel
type OrthographicCamera struct {
	viewport Viewport
	width    int
	height   int
	stepX    float64 // World units per pixel column
	stepY    float64 // World units per pixel row
}

// NewOrthographicCamera maps the viewport onto a width x height pixel grid
func NewOrthographicCamera(viewport Viewport, width, height int) *OrthographicCamera {
	return &OrthographicCamera{
		viewport: viewport,
		width:    width,
		height:   height,
		stepX:    viewport.Width() / float64(width),
		stepY:    viewport.Height() / float64(height),
	}
}

// GetRay returns the primary ray for pixel (px, py). Row 0 is the bottom
// edge of the viewport.
func (c *OrthographicCamera) GetRay(px, py int) core.Ray {
	x := c.viewport.X1 + float64(px)*c.stepX
	y := c.viewport.Y1 + float64(py)*c.stepY
	return core.NewRay(core.NewPoint3(x, y, 0), core.NewPoint3(x, y, -1))
}

// GetViewport returns the world-space rectangle covered by the camera
func (c *OrthographicCamera) GetViewport() Viewport {
	return c.viewport
}
