package lights

import (
	"testing"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

func TestPointLight_MoveTo(t *testing.T) {
	ambient := core.NewColor(0.12, 0.12, 0.12, 0)
	light := NewPointLight(core.NewPoint3(0, 0, 10), ambient, core.Black, core.White)

	moved := light.MoveTo(core.NewPoint3(20, 0, 10))

	if moved.Position != core.NewPoint3(20, 0, 10) {
		t.Errorf("Expected position (20,0,10), got %v", moved.Position)
	}
	if light.Position != core.NewPoint3(0, 0, 10) {
		t.Errorf("MoveTo should not modify the receiver, got %v", light.Position)
	}
	if moved.Ambient != ambient || moved.Diffuse != core.Black || moved.Specular != core.White {
		t.Errorf("MoveTo should keep the light colors, got %+v", moved)
	}
}
