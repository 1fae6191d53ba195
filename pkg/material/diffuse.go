package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Diffuse represents a matte surface
type Diffuse struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewDiffuse creates a new diffuse material
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

func (d *Diffuse) Kind() string { return KindDiffuse }
func (d *Diffuse) sealed()      {}

// Scatter bounces a ray off the surface in direction normal + random unit vector.
// This biases the bounce toward the normal hemisphere without exact cosine sampling.
func (d *Diffuse) Scatter(point, normal core.Vec3, sampler core.Sampler) core.Ray {
	direction := normal.Add(core.RandomUnitVector(sampler))

	// normal and the random vector can cancel out exactly; fall back to the normal
	if direction.LengthSquared() < 1e-16 {
		direction = normal
	}
	return core.NewRay(point, direction)
}
