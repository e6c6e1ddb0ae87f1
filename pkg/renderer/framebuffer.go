package renderer

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// FrameBuffer holds one traced color per pixel. Pixel (px, py) is stored at
// Pixels[py*Width+px] and row 0 is the bottom of the viewport.
type FrameBuffer struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewFrameBuffer allocates a buffer of width x height pixels
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the color of pixel (px, py)
func (fb *FrameBuffer) At(px, py int) core.Color {
	return fb.Pixels[py*fb.Width+px]
}

// Set stores the color of pixel (px, py)
func (fb *FrameBuffer) Set(px, py int, c core.Color) {
	fb.Pixels[py*fb.Width+px] = c
}

// Bounds returns the pixel rectangle covered by the buffer
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// ColorToRGBA converts a traced color to 8-bit RGB. Channels are clamped to
// [0,1]; alpha is not displayed and the pixel is always opaque.
func ColorToRGBA(c core.Color) color.RGBA {
	c = c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: 255,
	}
}

// Image converts the buffer to an image with row 0 at the top
func (fb *FrameBuffer) Image() *image.NRGBA {
	return fb.Region(fb.Bounds())
}

// Region converts the pixels inside bounds (buffer coordinates) to an image
// with row 0 at the top
func (fb *FrameBuffer) Region(bounds image.Rectangle) *image.NRGBA {
	bounds = bounds.Intersect(fb.Bounds())
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			img.SetRGBA(px-bounds.Min.X, py-bounds.Min.Y, ColorToRGBA(fb.At(px, py)))
		}
	}

	return imaging.FlipV(img)
}

// ImageRect returns where bounds (buffer coordinates) land in Image()
func (fb *FrameBuffer) ImageRect(bounds image.Rectangle) image.Rectangle {
	bounds = bounds.Intersect(fb.Bounds())
	return image.Rect(bounds.Min.X, fb.Height-bounds.Max.Y, bounds.Max.X, fb.Height-bounds.Min.Y)
}
