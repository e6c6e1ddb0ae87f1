package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

func lightColors() (core.Color, core.Color, core.Color) {
	return core.NewColor(0.1, 0.1, 0.1, 0), core.NewColor(0.3, 0.3, 0.3, 0), core.NewColor(0.4, 0.4, 0.4, 0)
}

func TestBuilder_KeepsInsertionOrder(t *testing.T) {
	a, d, s := lightColors()
	sc, err := NewBuilder(-50).
		SetLight(core.NewPoint3(0, 0, 10), a, d, s).
		AddSphere(1, 0, 0, 1, core.Red, 0.5, 1).
		AddSphere(2, 0, 0, 1, core.Green, 0.5, 1).
		AddSphere(3, 0, 0, 1, core.Blue, 0.5, 1).
		Build()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	objects := sc.GetObjects()
	if len(objects) != 3 || sc.GetObjectCount() != 3 {
		t.Fatalf("Expected 3 objects, got %d", len(objects))
	}
	for i, obj := range objects {
		if obj.Sphere.Center.X != float64(i+1) {
			t.Errorf("Object %d: expected center x %d, got %f", i, i+1, obj.Sphere.Center.X)
		}
	}
	if objects[1].Material.Diffuse != core.Green {
		t.Errorf("Expected tint reused as diffuse, got %v", objects[1].Material.Diffuse)
	}
	if sc.GetFloor().Y != -50 {
		t.Errorf("Expected floor at -50, got %f", sc.GetFloor().Y)
	}
	if sc.GetLight().Diffuse != d {
		t.Errorf("Expected light diffuse %v, got %v", d, sc.GetLight().Diffuse)
	}
}

func TestBuilder_Validation(t *testing.T) {
	a, d, s := lightColors()

	tests := []struct {
		name    string
		build   func() (*Scene, error)
		wantErr error
	}{
		{
			name: "missing light",
			build: func() (*Scene, error) {
				return NewBuilder(-50).AddSphere(0, 0, -20, 6, core.White, 0.5, 1).Build()
			},
			wantErr: ErrNoLight,
		},
		{
			name: "zero radius",
			build: func() (*Scene, error) {
				return NewBuilder(-50).SetLight(core.NewPoint3(0, 0, 0), a, d, s).
					AddSphere(0, 0, -20, 0, core.White, 0.5, 1).Build()
			},
			wantErr: ErrInvalidRadius,
		},
		{
			name: "negative radius after a valid sphere",
			build: func() (*Scene, error) {
				return NewBuilder(-50).SetLight(core.NewPoint3(0, 0, 0), a, d, s).
					AddSphere(0, 0, -20, 6, core.White, 0.5, 1).
					AddSphere(0, 0, -40, -1, core.White, 0.5, 1).Build()
			},
			wantErr: ErrInvalidRadius,
		},
		{
			name: "negative exponent",
			build: func() (*Scene, error) {
				return NewBuilder(-50).SetLight(core.NewPoint3(0, 0, 0), a, d, s).
					AddSphere(0, 0, -20, 6, core.White, 0.5, -2).Build()
			},
			wantErr: ErrInvalidExponent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := tt.build()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if sc != nil {
				t.Error("Expected nil scene on error")
			}
		})
	}
}

func TestBuilder_EmptySceneIsValid(t *testing.T) {
	a, d, s := lightColors()
	sc, err := NewBuilder(-50).SetLight(core.NewPoint3(0, 0, 0), a, d, s).Build()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sc.GetObjectCount() != 0 {
		t.Errorf("Expected empty scene, got %d objects", sc.GetObjectCount())
	}
}

func TestBuilder_SceneIsDetached(t *testing.T) {
	a, d, s := lightColors()
	b := NewBuilder(-50).SetLight(core.NewPoint3(0, 0, 0), a, d, s).AddSphere(0, 0, -20, 6, core.White, 0.5, 1)

	sc, err := b.Build()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	b.AddSphere(5, 5, -20, 1, core.Red, 0.5, 1)
	if sc.GetObjectCount() != 1 {
		t.Errorf("Adding to a used builder changed the scene: %d objects", sc.GetObjectCount())
	}
	if _, err := b.Build(); !errors.Is(err, ErrSceneAlreadyBuilt) {
		t.Errorf("Expected ErrSceneAlreadyBuilt, got %v", err)
	}
}
