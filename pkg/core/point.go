package core

// Point3 is a location in world space. Subtracting two points yields a Vec3
// through VectorBetween; translating a point by a Vec3 yields a Point3.
type Point3 struct {
	X, Y, Z float64
}

// NewPoint3 creates a new Point3
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of two points
func (p Point3) Add(other Point3) Point3 {
	return Point3{p.X + other.X, p.Y + other.Y, p.Z + other.Z}
}

// Subtract returns the component-wise difference of two points
func (p Point3) Subtract(other Point3) Point3 {
	return Point3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Scale returns the point with every coordinate multiplied by s
func (p Point3) Scale(s float64) Point3 {
	return Point3{p.X * s, p.Y * s, p.Z * s}
}

// Translate moves the point by the displacement v
func (p Point3) Translate(v Vec3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// ToVec3 reinterprets the point as its displacement from the origin
func (p Point3) ToVec3() Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}

// VectorBetween returns the displacement that takes from to to.
func VectorBetween(from, to Point3) Vec3 {
	return Vec3{to.X - from.X, to.Y - from.Y, to.Z - from.Z}
}

// DistanceSquared returns the squared distance between two points
func DistanceSquared(a, b Point3) float64 {
	dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	return dx*dx + dy*dy + dz*dz
}
