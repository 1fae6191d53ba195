package geometry

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// triangleEpsilon rejects near-parallel rays and hits too close to the ray origin
const triangleEpsilon = 1e-8

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	A, B, C  core.Vec3         // The three vertices
	Material material.Material // Material of the triangle
	normal   core.Vec3         // Cached right-hand-rule normal of (A, B, C)
}

// NewTriangle creates a new triangle from three vertices.
// Collinear vertices are accepted; such a triangle never reports a hit.
func NewTriangle(a, b, c core.Vec3, material material.Material) *Triangle {
	return &Triangle{
		A:        a,
		B:        b,
		C:        c,
		Material: material,
		normal:   b.Subtract(a).Cross(c.Subtract(a)).Normalize(),
	}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	edge1 := t.B.Subtract(t.A)
	edge2 := t.C.Subtract(t.A)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Ray parallel to the triangle plane, or a degenerate triangle
	if math.Abs(det) < triangleEpsilon {
		return nil, false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(t.A)
	u := invDet * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0.0 || v > 1.0 || u+v > 1.0 {
		return nil, false
	}

	tHit := invDet * edge2.Dot(q)
	if tHit <= triangleEpsilon || tHit < tMin || tHit > tMax {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:        tHit,
		Point:    ray.At(tHit),
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// Normal returns the triangle's unit face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Clone returns a copy of the triangle
func (t *Triangle) Clone() Shape {
	clone := *t
	return &clone
}
