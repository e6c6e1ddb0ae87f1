package lights

import "github.com/df07/go-mirror-raytracer/pkg/core"

// PointLight is a positioned light with separate ambient, diffuse and
// specular intensities
type PointLight struct {
	Position core.Point3
	Ambient  core.Color
	Diffuse  core.Color
	Specular core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Point3, ambient, diffuse, specular core.Color) PointLight {
	return PointLight{
		Position: position,
		Ambient:  ambient,
		Diffuse:  diffuse,
		Specular: specular,
	}
}

// MoveTo returns a copy of the light at a new position
func (l PointLight) MoveTo(position core.Point3) PointLight {
	l.Position = position
	return l
}
