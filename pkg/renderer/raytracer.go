package renderer

import (
	"image"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/integrator"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// Raytracer fills a frame buffer by casting one orthographic ray per pixel
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	width      int
	height     int
}

// NewRaytracer creates a raytracer for a width x height canvas
func NewRaytracer(sc *scene.Scene, integratorInst integrator.Integrator, width, height int) *Raytracer {
	return &Raytracer{
		scene:      sc,
		integrator: integratorInst,
		width:      width,
		height:     height,
	}
}

// GetSize returns the canvas dimensions in pixels
func (rt *Raytracer) GetSize() (width, height int) {
	return rt.width, rt.height
}

// ComputeScene traces every pixel of the viewport into a new frame buffer
func (rt *Raytracer) ComputeScene(viewport Viewport) *FrameBuffer {
	fb := NewFrameBuffer(rt.width, rt.height)
	camera := NewOrthographicCamera(viewport, rt.width, rt.height)
	rt.RenderBounds(camera, fb.Bounds(), fb)
	return fb
}

// RenderBounds traces the pixels inside bounds into fb. Disjoint bounds may
// be rendered concurrently into the same buffer.
func (rt *Raytracer) RenderBounds(camera *OrthographicCamera, bounds image.Rectangle, fb *FrameBuffer) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			c := rt.integrator.RayColor(camera.GetRay(px, py), rt.scene)
			fb.Set(px, py, c)
			stats.addPixel(c)
		}
	}

	return stats
}

// Pixel traces a single pixel without touching any buffer
func (rt *Raytracer) Pixel(viewport Viewport, px, py int) (core.Ray, core.Color) {
	ray := NewOrthographicCamera(viewport, rt.width, rt.height).GetRay(px, py)
	return ray, rt.integrator.RayColor(ray, rt.scene)
}
