package renderer

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestUpscale(t *testing.T) {
	img := solidImage(3, 2, color.RGBA{10, 20, 30, 255})

	tests := []struct {
		scale      int
		wantWidth  int
		wantHeight int
	}{
		{0, 3, 2},
		{1, 3, 2},
		{2, 6, 4},
		{4, 12, 8},
	}

	for _, tt := range tests {
		scaled := Upscale(img, tt.scale)
		if scaled.Bounds().Dx() != tt.wantWidth || scaled.Bounds().Dy() != tt.wantHeight {
			t.Errorf("Scale %d: expected %dx%d, got %v", tt.scale, tt.wantWidth, tt.wantHeight, scaled.Bounds())
		}
	}

	r, g, b, _ := Upscale(img, 3).At(4, 4).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("Expected nearest-neighbour colors to be preserved, got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestSavePNG(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nested", "render.png")

	if err := SavePNG(solidImage(4, 4, color.RGBA{255, 0, 0, 255}), filename); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	info, err := os.Stat(filename)
	if err != nil {
		t.Fatalf("Expected file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected non-empty PNG")
	}
}

func TestDrawOverlay(t *testing.T) {
	img := solidImage(300, 300, color.RGBA{0, 0, 0, 255})

	out := DrawOverlay(img, HintLines)
	if out.Bounds() != img.Bounds() {
		t.Fatalf("Overlay changed bounds to %v", out.Bounds())
	}

	green := 0
	bounds := out.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, g, _, _ := out.At(x, y).RGBA()
			if g > 0 {
				green++
			}
		}
	}
	if green == 0 {
		t.Error("Expected overlay text to be drawn in green")
	}

	// The source image is left untouched
	if _, g, _, _ := img.At(5, 245).RGBA(); g != 0 {
		t.Error("Overlay modified the input image")
	}
}
