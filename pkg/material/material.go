package material

import "github.com/df07/go-mirror-raytracer/pkg/core"

// Material holds the Phong reflectance of a surface and how much of the
// mirrored scene it blends in
type Material struct {
	Ambient          core.Color
	Diffuse          core.Color
	Specular         core.Color
	SpecularExponent float64 // Phong shininess, >= 0
	Reflectivity     float64 // weight of the mirror reflection, usually in [0,1]
}

// NewMaterial creates a material with independent reflectance colors
func NewMaterial(ambient, diffuse, specular core.Color, specularExponent, reflectivity float64) Material {
	return Material{
		Ambient:          ambient,
		Diffuse:          diffuse,
		Specular:         specular,
		SpecularExponent: specularExponent,
		Reflectivity:     reflectivity,
	}
}

// NewTintedMaterial creates a material that reuses a single tint for the
// ambient, diffuse and specular colors
func NewTintedMaterial(tint core.Color, reflectivity, specularExponent float64) Material {
	return NewMaterial(tint, tint, tint, specularExponent, reflectivity)
}
