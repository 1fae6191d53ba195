package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// SpecularWeight scales the reflected contribution of a metallic surface.
// With diffuse blending on, the remaining half comes from a diffuse bounce; with it off
// the other half is simply lost.
const SpecularWeight = 0.5

// Metallic represents a reflective material with optional fuzz and diffuse blend
type Metallic struct {
	Albedo       core.Vec3 // Metal color
	Fuzz         float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
	DiffuseBlend bool      // Mix in a diffuse bounce of the same albedo
}

// NewMetallic creates a new metallic material
func NewMetallic(albedo core.Vec3, fuzz float64, diffuseBlend bool) *Metallic {
	// Clamp fuzz to valid range
	fuzz = max(0.0, min(fuzz, 1.0))
	return &Metallic{Albedo: albedo, Fuzz: fuzz, DiffuseBlend: diffuseBlend}
}

func (m *Metallic) Kind() string { return KindMetallic }
func (m *Metallic) sealed()      {}

// Scatter reflects the incoming ray about the normal and perturbs it by the fuzz.
// It returns false when the perturbed ray points into the surface and is absorbed.
func (m *Metallic) Scatter(rayIn core.Ray, point, normal core.Vec3, sampler core.Sampler) (core.Ray, bool) {
	reflected := rayIn.Direction.Reflect(normal)
	direction := reflected.Add(core.RandomUnitVector(sampler).Multiply(m.Fuzz))
	scattered := core.NewRay(point, direction)

	return scattered, direction.Dot(normal) > 0
}

// Diffuse returns the diffuse material used for the blended bounce
func (m *Metallic) Diffuse() *Diffuse {
	return NewDiffuse(m.Albedo)
}
