package renderer

import (
	"image"
	"time"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	EmptyPixels int           // Pixels whose ray left the scene (pure black)
	Tiles       int           // Number of tiles rendered
	Duration    time.Duration // Wall time of the render
}

// addPixel records one traced pixel
func (s *RenderStats) addPixel(c core.Color) {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		s.EmptyPixels++
	}
}

// Merge adds the counts of another tile or frame
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.EmptyPixels += other.EmptyPixels
	s.Tiles += other.Tiles
}

// Coverage returns the fraction of pixels that saw something
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalPixels-s.EmptyPixels) / float64(s.TotalPixels)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image
// in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}

	return total / float64(pixels)
}
