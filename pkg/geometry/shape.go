package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// HitRecord contains information about a ray-object intersection.
// It is produced per intersection test and owned by the caller.
type HitRecord struct {
	Point     core.Vec3         // Point of intersection
	Normal    core.Vec3         // Unit surface normal, facing against the incoming ray
	T         float64           // Parameter t along the ray
	FrontFace bool              // Whether ray hit the front face
	Material  material.Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is implemented by *Sphere, *Triangle and *Aggregate.
// Hit returns the nearest intersection with t in [tMin, tMax].
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)

	// Clone returns an independent copy of the shape
	Clone() Shape
}
