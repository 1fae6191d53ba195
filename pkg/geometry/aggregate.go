package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Aggregate is an ordered list of shapes searched linearly for the closest hit
type Aggregate struct {
	Shapes []Shape
}

// NewAggregate creates an aggregate from the given shapes
func NewAggregate(shapes ...Shape) *Aggregate {
	return &Aggregate{Shapes: shapes}
}

// Add appends shapes to the aggregate
func (a *Aggregate) Add(shapes ...Shape) {
	a.Shapes = append(a.Shapes, shapes...)
}

// Len returns the number of direct children
func (a *Aggregate) Len() int {
	return len(a.Shapes)
}

// Hit tests every shape, narrowing tMax to the closest hit found so far
func (a *Aggregate) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestSoFar := tMax

	for _, shape := range a.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// Clone returns a deep copy: every contained shape is cloned as well
func (a *Aggregate) Clone() Shape {
	return a.CloneAggregate()
}

// CloneAggregate is Clone with the concrete type preserved
func (a *Aggregate) CloneAggregate() *Aggregate {
	shapes := make([]Shape, len(a.Shapes))
	for i, shape := range a.Shapes {
		shapes[i] = shape.Clone()
	}
	return &Aggregate{Shapes: shapes}
}

// PrimitiveCount returns the number of spheres and triangles, descending into nested aggregates
func (a *Aggregate) PrimitiveCount() int {
	count := 0
	for _, shape := range a.Shapes {
		switch s := shape.(type) {
		case *Aggregate:
			count += s.PrimitiveCount()
		default:
			count++
		}
	}
	return count
}

// AddParallelogram adds the parallelogram spanned by a, b, c as two triangles:
// (a, b, c) and (a, c, c + (a - b)).
func (a *Aggregate) AddParallelogram(p0, p1, p2 core.Vec3, mat material.Material) {
	p3 := p2.Add(p0.Subtract(p1))
	a.Add(NewTriangle(p0, p1, p2, mat), NewTriangle(p0, p2, p3, mat))
}
