package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/lights"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

var (
	ErrNoLight           = errors.New("scene has no light")
	ErrInvalidRadius     = errors.New("sphere radius must be positive")
	ErrInvalidExponent   = errors.New("specular exponent must not be negative")
	ErrSceneAlreadyBuilt = errors.New("scene builder already used")
)

// Object is a sphere paired with its material
type Object struct {
	Sphere   geometry.Sphere
	Material material.Material
}

// Scene is the immutable input of a render: an ordered list of objects,
// one light and the mirrored floor. Object order decides which of two
// equidistant hits wins.
type Scene struct {
	objects []Object
	light   lights.PointLight
	floor   geometry.FloorPlane
}

// GetObjects returns the objects in scan order. Callers must not modify it.
func (s *Scene) GetObjects() []Object { return s.objects }

// GetLight returns the scene light
func (s *Scene) GetLight() lights.PointLight { return s.light }

// GetFloor returns the mirrored floor plane
func (s *Scene) GetFloor() geometry.FloorPlane { return s.floor }

// GetObjectCount returns the number of spheres in the scene
func (s *Scene) GetObjectCount() int { return len(s.objects) }

// Builder collects spheres and the light before producing a Scene
type Builder struct {
	objects []Object
	light   *lights.PointLight
	floorY  float64
	err     error
	built   bool
}

// NewBuilder starts a scene whose floor lies at floorY
func NewBuilder(floorY float64) *Builder {
	return &Builder{floorY: floorY}
}

// AddSphere appends a sphere whose single tint is reused as ambient,
// diffuse and specular color
func (b *Builder) AddSphere(x, y, z, radius float64, tint core.Color, reflectivity, specularExponent float64) *Builder {
	return b.AddObject(
		geometry.NewSphere(core.NewPoint3(x, y, z), radius),
		material.NewTintedMaterial(tint, reflectivity, specularExponent),
	)
}

// AddObject appends a sphere with an arbitrary material
func (b *Builder) AddObject(sphere geometry.Sphere, mat material.Material) *Builder {
	if b.err != nil {
		return b
	}
	if !(sphere.Radius > 0) {
		b.err = fmt.Errorf("sphere %d at %v: %w (got %f)", len(b.objects), sphere.Center, ErrInvalidRadius, sphere.Radius)
		return b
	}
	if mat.SpecularExponent < 0 {
		b.err = fmt.Errorf("sphere %d at %v: %w (got %f)", len(b.objects), sphere.Center, ErrInvalidExponent, mat.SpecularExponent)
		return b
	}
	b.objects = append(b.objects, Object{Sphere: sphere, Material: mat})
	return b
}

// SetLight configures the single scene light, replacing any earlier one
func (b *Builder) SetLight(position core.Point3, ambient, diffuse, specular core.Color) *Builder {
	light := lights.NewPointLight(position, ambient, diffuse, specular)
	b.light = &light
	return b
}

// Build validates the collected state and returns the scene
func (b *Builder) Build() (*Scene, error) {
	if b.built {
		return nil, ErrSceneAlreadyBuilt
	}
	if b.err != nil {
		return nil, b.err
	}
	if b.light == nil {
		return nil, ErrNoLight
	}
	b.built = true

	objects := make([]Object, len(b.objects))
	copy(objects, b.objects)

	return &Scene{
		objects: objects,
		light:   *b.light,
		floor:   geometry.NewFloorPlane(b.floorY),
	}, nil
}
