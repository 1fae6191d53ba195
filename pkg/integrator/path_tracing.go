package integrator

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

const (
	// DefaultMaxDepth is the number of bounces after which a path returns black
	DefaultMaxDepth = 10

	// ShadowAcneEpsilon is the minimum hit distance for every intersection query
	ShadowAcneEpsilon = 0.001
)

// PathTracingIntegrator implements recursive unidirectional path tracing over the
// closed material set. Rays that escape return a flat ambient color.
type PathTracingIntegrator struct {
	maxDepth int
	ambient  core.Vec3
}

// NewPathTracingIntegrator creates a new path tracing integrator.
// A non-positive maxDepth selects DefaultMaxDepth.
func NewPathTracingIntegrator(maxDepth int, ambient core.Vec3) *PathTracingIntegrator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &PathTracingIntegrator{
		maxDepth: maxDepth,
		ambient:  ambient,
	}
}

// MaxDepth returns the bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// Ambient returns the color returned for escaped rays
func (pt *PathTracingIntegrator) Ambient() core.Vec3 {
	return pt.ambient
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, sampler, 0)
}

// rayColor returns the color for a ray that has already bounced depth times
func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth >= pt.maxDepth {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return pt.ambient
	}

	return pt.shade(ray, hit, hit.Material, world, sampler, depth)
}

// shade dispatches on mat. Checkerboards re-enter at the same depth.
func (pt *PathTracingIntegrator) shade(ray core.Ray, hit *geometry.HitRecord, mat material.Material, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	switch m := mat.(type) {
	case *material.Emissive:
		return m.Emit()

	case *material.ProceduralNoise:
		return m.Emit(hit.Point)

	case *material.Diffuse:
		return pt.calculateDiffuseColor(m, hit, world, sampler, depth)

	case *material.Metallic:
		return pt.calculateMetallicColor(m, ray, hit, world, sampler, depth)

	case *material.CheckerBoard:
		return pt.shade(ray, hit, m.Select(hit.Point), world, sampler, depth)

	default:
		// No material: treat as a perfect absorber
		return core.Vec3{}
	}
}

// calculateDiffuseColor bounces once and tints the incoming light by the albedo
func (pt *PathTracingIntegrator) calculateDiffuseColor(d *material.Diffuse, hit *geometry.HitRecord, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	scattered := d.Scatter(hit.Point, hit.Normal, sampler)
	return d.Albedo.MultiplyVec(pt.rayColor(scattered, world, sampler, depth+1))
}

// calculateMetallicColor weights the specular bounce by material.SpecularWeight and,
// for blended metals, adds a diffuse bounce with the remaining weight.
// An absorbed specular ray makes the whole result black, blend or not.
func (pt *PathTracingIntegrator) calculateMetallicColor(m *material.Metallic, ray core.Ray, hit *geometry.HitRecord, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	var diffuse core.Vec3
	if m.DiffuseBlend {
		diffuse = pt.calculateDiffuseColor(m.Diffuse(), hit, world, sampler, depth)
	}

	scattered, ok := m.Scatter(ray, hit.Point, hit.Normal, sampler)
	if !ok {
		return core.Vec3{}
	}

	specular := m.Albedo.MultiplyVec(pt.rayColor(scattered, world, sampler, depth+1))
	return specular.Multiply(material.SpecularWeight).Add(diffuse.Multiply(1 - material.SpecularWeight))
}
