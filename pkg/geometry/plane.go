package geometry

import "github.com/df07/go-mirror-raytracer/pkg/core"

// FloorPlane is the infinite horizontal mirror at height Y
type FloorPlane struct {
	Y float64
}

// NewFloorPlane creates a floor at the given height
func NewFloorPlane(y float64) FloorPlane {
	return FloorPlane{Y: y}
}

// Intersect returns the point where the ray crosses the floor.
// The caller guarantees the ray is not parallel to the plane.
func (f FloorPlane) Intersect(ray core.Ray) core.Point3 {
	t := (f.Y - ray.Origin.Y) / (ray.At.Y - ray.Origin.Y)
	return ray.PointAt(t)
}

// Normal returns the upward normal of the floor
func (f FloorPlane) Normal() core.Vec3 {
	return core.NewVec3(0, 1, 0)
}

// Below reports whether the ray heads toward the floor
func (f FloorPlane) Below(ray core.Ray) bool {
	return ray.At.Y-ray.Origin.Y < 0
}
