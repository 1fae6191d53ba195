package material

import (
	"math"
	"sync"

	"github.com/aquilax/go-perlin"
	"github.com/mazznoer/colorgrad"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

const (
	// NoiseFrequency scales hit points before sampling the noise field
	NoiseFrequency = 20.0

	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	noiseSeed    = 4
)

// noiseField is shared by every ProceduralNoise; sampling it is read-only
var noiseField = sync.OnceValue(func() *perlin.Perlin {
	return perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, noiseSeed)
})

var noisePalette = sync.OnceValue(func() colorgrad.Gradient {
	return colorgrad.Rainbow()
})

// ProceduralNoise is an emissive material whose color comes from 3D coherent noise
// mapped through a rainbow palette. It terminates a path.
type ProceduralNoise struct{}

// NewProceduralNoise creates a new procedural noise material
func NewProceduralNoise() *ProceduralNoise {
	return &ProceduralNoise{}
}

func (n *ProceduralNoise) Kind() string { return KindProceduralNoise }
func (n *ProceduralNoise) sealed()      {}

// Emit returns the emitted color at point
func (n *ProceduralNoise) Emit(point core.Vec3) core.Vec3 {
	p := point.Multiply(NoiseFrequency)
	value := noiseField().Noise3D(p.X, p.Y, p.Z)
	return PaletteColor(softClamp(value - 0.5))
}

// softClamp maps a signed distance onto [0,1) with tanh(|d|/2)
func softClamp(distance float64) float64 {
	v := math.Tanh(math.Abs(distance) / 2)
	if math.IsNaN(v) {
		return 0
	}
	return max(0, min(1, v))
}

// PaletteColor samples the rainbow palette at t in [0,1]
func PaletteColor(t float64) core.Vec3 {
	c := noisePalette().At(max(0, min(1, t)))
	return core.NewVec3(c.R, c.G, c.B).Clamp(0, 1)
}
