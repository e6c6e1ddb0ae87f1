package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		vector Vec3
	}{
		{"unit x", NewVec3(1, 0, 0)},
		{"long diagonal", NewVec3(3, -4, 12)},
		{"tiny", NewVec3(1e-7, 2e-7, -3e-7)},
		{"negative", NewVec3(-5, -5, -5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.vector.Normalize()
			if math.Abs(n.Length()-1) > 1e-9 {
				t.Errorf("Expected unit length, got %f for %v", n.Length(), n)
			}
			// Same direction: positive dot with the original
			if n.Dot(tt.vector) <= 0 {
				t.Errorf("Normalized vector %v points away from %v", n, tt.vector)
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	zero := NewVec3(0, 0, 0)
	if got := zero.Normalize(); got != zero {
		t.Errorf("Expected zero vector unchanged, got %v", got)
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-4, 5, 0.5)

	if got := a.Add(b); got != NewVec3(-3, 7, 3.5) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(5, -3, 2.5) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := ScaleVector(2, a); got != NewVec3(2, 4, 6) {
		t.Errorf("ScaleVector: got %v", got)
	}
	if got := a.Dot(b); got != 7.5 {
		t.Errorf("Dot: expected 7.5, got %f", got)
	}
	if got := a.Negate(); got != NewVec3(-1, -2, -3) {
		t.Errorf("Negate: got %v", got)
	}
}

func TestPoint3_VectorConversions(t *testing.T) {
	from := NewPoint3(1, 1, 1)
	to := NewPoint3(4, 5, 1)

	v := VectorBetween(from, to)
	if v != NewVec3(3, 4, 0) {
		t.Fatalf("VectorBetween: got %v", v)
	}
	if back := from.Translate(v); back != to {
		t.Errorf("Translate should invert VectorBetween, got %v", back)
	}
	if d := DistanceSquared(from, to); d != 25 {
		t.Errorf("DistanceSquared: expected 25, got %f", d)
	}
	if d := DistanceSquared(to, from); d != 25 {
		t.Errorf("DistanceSquared should be symmetric, got %f", d)
	}
	if got := to.Subtract(from); got != NewPoint3(3, 4, 0) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := from.Add(to).Scale(0.5); got != NewPoint3(2.5, 3, 1) {
		t.Errorf("Add/Scale: got %v", got)
	}
}
