package geometry

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Epsilon is the tolerance below which discriminants and ray parameters are
// treated as "no intersection" (tangent rays, hits behind the origin).
const Epsilon = 1e-5

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Point3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Point3, radius float64) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
	}
}

// Intersect returns the nearest point where the ray enters the sphere.
// Rays starting inside the sphere never hit it.
func (s Sphere) Intersect(ray core.Ray) (core.Point3, bool) {
	radiusSq := s.Radius * s.Radius
	if core.DistanceSquared(s.Center, ray.Origin) < radiusSq {
		return core.Point3{}, false
	}

	d := ray.Direction()
	oc := core.VectorBetween(s.Center, ray.Origin)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := d.Dot(d)
	b := 2.0 * oc.Dot(d)
	c := oc.Dot(oc) - radiusSq

	discriminant := b*b - 4.0*a*c
	if discriminant <= Epsilon {
		return core.Point3{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)

	// Sphere entirely behind the origin
	if t0 < Epsilon && t1 < Epsilon {
		return core.Point3{}, false
	}

	if t0 <= Epsilon {
		return ray.PointAt(t1), true
	}
	return ray.PointAt(min(t0, t1)), true
}

// Normal returns the outward unit normal at p
func (s Sphere) Normal(p core.Point3) core.Vec3 {
	return core.VectorBetween(s.Center, p).Normalize()
}
