package geometry

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere. A non-positive radius is accepted but never hits.
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere.
// Only the nearer root is considered, so a ray starting inside the sphere reports the
// surface behind it (rejected by tMin) rather than the exit point.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	if s.Radius <= 0 {
		return nil, false
	}

	// Vector from ray origin to sphere center
	oc := s.Center.Subtract(ray.Origin)

	// Half-angle form of the quadratic: a t² - 2h t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return nil, false
	}
	h := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	root := (h - math.Sqrt(discriminant)) / a
	if root < tMin || root > tMax {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Calculate outward normal (from center to hit point)
	outwardNormal := hitRecord.Point.Subtract(s.Center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// Clone returns a copy of the sphere
func (s *Sphere) Clone() Shape {
	clone := *s
	return &clone
}
