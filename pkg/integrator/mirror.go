package integrator

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/material"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// MirrorIntegrator traces Phong-lit spheres with recursive mirror
// reflections off the spheres and the floor
type MirrorIntegrator struct {
	config Config
}

// NewMirrorIntegrator creates a new mirror integrator
func NewMirrorIntegrator(config Config) *MirrorIntegrator {
	return &MirrorIntegrator{config: config}
}

// Hit is the nearest sphere intersection found along a ray
type Hit struct {
	Index  int // Position of the object in scan order
	Object scene.Object
	Point  core.Point3
}

// ClosestHit scans objects in order and keeps the first hit unless a later
// one lies strictly closer to the ray origin
func ClosestHit(ray core.Ray, objects []scene.Object) (Hit, bool) {
	var closest Hit
	found := false

	for i, obj := range objects {
		p, isHit := obj.Sphere.Intersect(ray)
		if !isHit {
			continue
		}
		if !found || core.DistanceSquared(ray.Origin, p) < core.DistanceSquared(closest.Point, ray.Origin) {
			closest = Hit{Index: i, Object: obj, Point: p}
			found = true
		}
	}

	return closest, found
}

// RayColor casts a primary ray at depth 0
func (mi *MirrorIntegrator) RayColor(ray core.Ray, sc *scene.Scene) core.Color {
	return mi.CastRay(ray, sc, 0)
}

// CastRay returns the color along ray at the given recursion depth.
// The invocation that would be the MaxDepth-th returns opaque black.
func (mi *MirrorIntegrator) CastRay(ray core.Ray, sc *scene.Scene, depth int) core.Color {
	depth++
	if depth >= mi.config.MaxDepth {
		return core.Black
	}

	hit, isHit := ClosestHit(ray, sc.GetObjects())
	if !isHit {
		return mi.floorColor(ray, sc, depth)
	}

	direct := mi.directColor(ray, sc, hit)

	normal := hit.Object.Sphere.Normal(hit.Point)
	reflected := geometry.ReflectRay(ray, hit.Point, normal)
	indirect := mi.CastRay(reflected, sc, depth)

	// Alpha is not blended
	reflectivity := hit.Object.Material.Reflectivity
	direct.R += reflectivity * indirect.R
	direct.G += reflectivity * indirect.G
	direct.B += reflectivity * indirect.B

	// Refraction is not traced

	return direct
}

// floorColor mirrors rays heading down off the floor; anything else has
// left the scene
func (mi *MirrorIntegrator) floorColor(ray core.Ray, sc *scene.Scene, depth int) core.Color {
	floor := sc.GetFloor()
	if !floor.Below(ray) {
		return core.Black
	}

	p := floor.Intersect(ray)
	reflected := geometry.ReflectRay(ray, p, floor.Normal())
	return mi.CastRay(reflected, sc, depth)
}

// directColor evaluates Phong shading at a sphere hit, viewed from the ray origin
func (mi *MirrorIntegrator) directColor(ray core.Ray, sc *scene.Scene, hit Hit) core.Color {
	return material.Phong(hit.Object.Sphere.Center, hit.Point, ray.Origin, hit.Object.Material, sc.GetLight())
}

// Inspection describes what a single primary ray sees
type Inspection struct {
	Hit      bool // A sphere was hit
	Floor    bool // The ray was mirrored by the floor instead
	Index    int  // Scan-order index of the sphere hit
	Object   scene.Object
	Point    core.Point3 // Sphere or floor hit point
	Normal   core.Vec3
	Distance float64    // Distance from the ray origin to Point
	Direct   core.Color // Phong shading at the hit, black for the floor
	Final    core.Color // Full traced color
}

// Inspect traces a primary ray and reports the first surface it meets
func (mi *MirrorIntegrator) Inspect(ray core.Ray, sc *scene.Scene) Inspection {
	result := Inspection{Index: -1, Final: mi.RayColor(ray, sc)}

	if hit, isHit := ClosestHit(ray, sc.GetObjects()); isHit {
		result.Hit = true
		result.Index = hit.Index
		result.Object = hit.Object
		result.Point = hit.Point
		result.Normal = hit.Object.Sphere.Normal(hit.Point)
		result.Direct = mi.directColor(ray, sc, hit)
	} else if floor := sc.GetFloor(); floor.Below(ray) {
		result.Floor = true
		result.Point = floor.Intersect(ray)
		result.Normal = floor.Normal()
		result.Direct = core.Black
	} else {
		return result
	}

	result.Distance = core.VectorBetween(ray.Origin, result.Point).Length()
	return result
}
