package scene

import (
	"fmt"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/loaders"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// NewJSONScene loads a scene from a JSON scene file. The file's floorY,
// when present, overrides floorY.
func NewJSONScene(filename string, floorY float64) (*Scene, error) {
	file, err := loaders.LoadSceneFile(filename)
	if err != nil {
		return nil, err
	}
	return FromSceneFile(file, floorY)
}

// FromSceneFile converts a decoded scene description into a Scene
func FromSceneFile(file *loaders.SceneFile, floorY float64) (*Scene, error) {
	if file.FloorY != nil {
		floorY = *file.FloorY
	}
	builder := NewBuilder(floorY)

	ambient, err := file.Light.Ambient.Color()
	if err != nil {
		return nil, fmt.Errorf("light ambient: %w", err)
	}
	diffuse, err := file.Light.Diffuse.Color()
	if err != nil {
		return nil, fmt.Errorf("light diffuse: %w", err)
	}
	specular, err := file.Light.Specular.Color()
	if err != nil {
		return nil, fmt.Errorf("light specular: %w", err)
	}
	p := file.Light.Position
	builder.SetLight(core.NewPoint3(p[0], p[1], p[2]), ambient, diffuse, specular)

	for i, s := range file.Spheres {
		a, d, sp, err := s.Materials()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		builder.AddObject(
			geometry.NewSphere(core.NewPoint3(s.Center[0], s.Center[1], s.Center[2]), s.Radius),
			material.NewMaterial(a, d, sp, s.SpecularExponent, s.Reflectivity),
		)
	}

	return builder.Build()
}
