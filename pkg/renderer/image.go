package renderer

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

// SavePNG writes img to filename, creating parent directories
func SavePNG(img image.Image, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := gg.SavePNG(filename, img); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return nil
}

// Upscale enlarges img by an integer factor with nearest-neighbour sampling
// so pixels stay sharp
func Upscale(img image.Image, scale int) image.Image {
	if scale <= 1 {
		return img
	}
	bounds := img.Bounds()
	return resize.Resize(uint(bounds.Dx()*scale), uint(bounds.Dy()*scale), img, resize.NearestNeighbor)
}

// HintLines is the start-up message shown over the first frame
var HintLines = []string{
	"Press G to begin simulation.",
	"Press X to exit when you are finished viewing the image.",
}

// DrawOverlay draws green text lines near the bottom-left of img, one line
// per 5% of the height starting at 20% from the bottom
func DrawOverlay(img image.Image, lines []string) image.Image {
	dc := gg.NewContextForImage(img)
	width := float64(dc.Width())
	height := float64(dc.Height())

	dc.SetRGB(0, 1, 0)
	for i, line := range lines {
		x := width * 0.01
		y := height * (1 - 0.20 + 0.05*float64(i))
		dc.DrawString(line, x, y)
	}

	return dc.Image()
}
