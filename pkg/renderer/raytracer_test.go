package renderer

import (
	"sync/atomic"
	"testing"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/integrator"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// MockIntegrator encodes the ray origin into the returned color
type MockIntegrator struct {
	callCount atomic.Int64
}

func (m *MockIntegrator) RayColor(ray core.Ray, sc *scene.Scene) core.Color {
	m.callCount.Add(1)
	return core.NewColor(ray.Origin.X, ray.Origin.Y, ray.At.Z, 1)
}

// silentLogger discards render logs
type silentLogger struct{}

func (silentLogger) Printf(format string, args ...interface{}) {}

func defaultTestScene(t *testing.T) *scene.Scene {
	t.Helper()
	sc, err := scene.NewDefaultScene()
	if err != nil {
		t.Fatalf("Failed to build default scene: %v", err)
	}
	return sc
}

func TestRaytracer_ComputeSceneVisitsEveryPixel(t *testing.T) {
	mock := &MockIntegrator{}
	width, height := 8, 6
	rt := NewRaytracer(defaultTestScene(t), mock, width, height)
	viewport := NewViewport(0, 0, 8, 12)

	fb := rt.ComputeScene(viewport)

	if got := mock.callCount.Load(); got != int64(width*height) {
		t.Errorf("Expected %d integrator calls, got %d", width*height, got)
	}
	if len(fb.Pixels) != width*height {
		t.Fatalf("Expected %d pixels, got %d", width*height, len(fb.Pixels))
	}

	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			c := fb.Pixels[py*width+px]
			if c.R != float64(px) || c.G != float64(2*py) || c.B != -1 {
				t.Fatalf("Pixel (%d,%d): expected ray from (%d,%d) toward z=-1, got %v", px, py, px, 2*py, c)
			}
		}
	}
}

func TestRaytracer_MatchesIntegrator(t *testing.T) {
	sc := defaultTestScene(t)
	mi := integrator.NewMirrorIntegrator(integrator.DefaultConfig())
	width, height := 30, 30
	viewport := CenteredViewport(100, 100)
	rt := NewRaytracer(sc, mi, width, height)

	fb := rt.ComputeScene(viewport)
	camera := NewOrthographicCamera(viewport, width, height)

	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			expected := mi.RayColor(camera.GetRay(px, py), sc)
			if fb.At(px, py) != expected {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", px, py, expected, fb.At(px, py))
			}
		}
	}

	// Rendering again recomputes the same frame
	again := rt.ComputeScene(viewport)
	for i := range fb.Pixels {
		if fb.Pixels[i] != again.Pixels[i] {
			t.Fatalf("Pixel %d differs between renders", i)
		}
	}

	_, c := rt.Pixel(viewport, 15, 15)
	if c != fb.At(15, 15) {
		t.Errorf("Pixel trace %v differs from frame %v", c, fb.At(15, 15))
	}
}

func TestRaytracer_MaxDepthOneRendersBlack(t *testing.T) {
	mi := integrator.NewMirrorIntegrator(integrator.Config{MaxDepth: 1})
	rt := NewRaytracer(defaultTestScene(t), mi, 20, 20)

	fb := rt.ComputeScene(CenteredViewport(100, 100))
	for i, c := range fb.Pixels {
		if c != core.Black {
			t.Fatalf("Pixel %d: expected opaque black, got %v", i, c)
		}
	}
}

func TestRaytracer_DefaultSceneShowsSpheres(t *testing.T) {
	mi := integrator.NewMirrorIntegrator(integrator.DefaultConfig())
	rt := NewRaytracer(defaultTestScene(t), mi, 30, 30)

	fb := rt.ComputeScene(CenteredViewport(100, 100))

	// The silver sphere sits at the center of the viewport
	center := fb.At(15, 15)
	if center.R <= 0 || center.G <= 0 || center.B <= 0 {
		t.Errorf("Expected the center pixel to be lit, got %v", center)
	}

	stats := rt.RenderBounds(NewOrthographicCamera(CenteredViewport(100, 100), 30, 30), fb.Bounds(), fb)
	if stats.TotalPixels != 900 {
		t.Errorf("Expected 900 pixels, got %d", stats.TotalPixels)
	}
	if stats.EmptyPixels == 0 || stats.EmptyPixels == 900 {
		t.Errorf("Expected some but not all pixels to be empty, got %d", stats.EmptyPixels)
	}
}
