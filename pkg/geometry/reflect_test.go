package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

func TestReflect_AngleOfIncidence(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		incident := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1).Normalize()
		normal := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1).Normalize()
		if incident.LengthSquared() == 0 || normal.LengthSquared() == 0 {
			continue
		}

		r := Reflect(incident, normal)
		if math.Abs(r.Dot(normal)+incident.Dot(normal)) > 1e-9 {
			t.Fatalf("Reflection law violated: i=%v n=%v r=%v", incident, normal, r)
		}
		if math.Abs(r.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit reflection, got length %f", r.Length())
		}
	}
}

func TestReflect_Floor(t *testing.T) {
	incident := core.NewVec3(1, -1, 0).Normalize()
	r := Reflect(incident, core.NewVec3(0, 1, 0))
	expected := core.NewVec3(1, 1, 0).Normalize()

	if r.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, r)
	}
}

func TestReflectRay(t *testing.T) {
	incoming := core.NewRay(core.NewPoint3(0, 0, 0), core.NewPoint3(0, 0, -5))
	p := core.NewPoint3(0, 0, -14)

	ray := ReflectRay(incoming, p, core.NewVec3(0, 0, 1))
	if ray.Origin != p {
		t.Errorf("Expected reflected ray to start at %v, got %v", p, ray.Origin)
	}
	if d := ray.Direction(); d.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("Expected reflected direction (0,0,1), got %v", d)
	}
}
