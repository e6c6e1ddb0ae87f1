package geometry

import "github.com/df07/go-mirror-raytracer/pkg/core"

// Reflect mirrors the unit incident direction about the unit normal and
// returns the normalized result.
func Reflect(incident, normal core.Vec3) core.Vec3 {
	cosi := incident.Negate().Dot(normal)
	return incident.Add(normal.Multiply(2 * cosi)).Normalize()
}

// ReflectRay builds the mirror ray leaving p for an incoming ray
func ReflectRay(incoming core.Ray, p core.Point3, normal core.Vec3) core.Ray {
	incident := incoming.Direction().Normalize()
	return core.RayFromPointVector(p, Reflect(incident, normal))
}
