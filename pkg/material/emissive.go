package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Emissive represents a light-emitting material. It terminates a path.
type Emissive struct {
	Emission core.Vec3 // Emitted light color/intensity
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

func (e *Emissive) Kind() string { return KindEmissive }
func (e *Emissive) sealed()      {}

// Emit returns the emitted light for this material
func (e *Emissive) Emit() core.Vec3 {
	return e.Emission
}
