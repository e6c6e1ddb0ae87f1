package material

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/lights"
)

// Phong evaluates Phong illumination at point p on a sphere centered at
// center, seen from viewer.
//
// The half vector is (l+v)/2 and is not renormalized. The diffuse term uses
// dot(l,n) unclamped and the specular base is |dot(h,n)|, so back faces
// still receive a highlight; negative terms are dropped by AddColors3.
func Phong(center, p, viewer core.Point3, m Material, light lights.PointLight) core.Color {
	l := core.VectorBetween(p, light.Position).Normalize()
	v := core.VectorBetween(p, viewer).Normalize()
	n := core.VectorBetween(center, p).Normalize()
	h := core.ScaleVector(0.5, l.Add(v))

	ambient := core.MultiplyColors(m.Ambient, light.Ambient)

	diffuse := core.ScaleColor(l.Dot(n),
		core.MultiplyColors(m.Diffuse, light.Diffuse))

	specular := core.ScaleColor(math.Pow(math.Abs(h.Dot(n)), m.SpecularExponent),
		core.MultiplyColors(m.Specular, light.Specular))

	return core.AddColors3(ambient, diffuse, specular)
}
