package core

import "math"

// Ray is described by its origin and a second point it passes through.
// The direction is At - Origin and is not required to be unit length.
type Ray struct {
	Origin Point3
	At     Point3
}

// NewRay creates a ray from origin through at
func NewRay(origin, at Point3) Ray {
	return Ray{Origin: origin, At: at}
}

// RayFromPointVector creates a ray starting at p heading along v
func RayFromPointVector(p Point3, v Vec3) Ray {
	return Ray{Origin: p, At: p.Translate(v)}
}

// Direction returns the (unnormalized) direction of the ray
func (r Ray) Direction() Vec3 {
	return VectorBetween(r.Origin, r.At)
}

// PointAt returns origin + t*(at-origin)
func (r Ray) PointAt(t float64) Point3 {
	return r.Origin.Translate(r.Direction().Multiply(t))
}

// Normalize moves At so that it lies at unit distance from Origin
func (r Ray) Normalize() Ray {
	d := r.Direction()
	length := math.Sqrt(d.LengthSquared())
	if length == 0 {
		return r
	}
	return Ray{
		Origin: r.Origin,
		At: Point3{
			X: d.X/length + r.Origin.X,
			Y: d.Y/length + r.Origin.Y,
			Z: d.Z/length + r.Origin.Z,
		},
	}
}
