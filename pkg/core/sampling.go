package core

import (
	"math/rand"
)

// Vec2 represents a 2D sample value
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; each render worker owns one.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler backed by a generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomInRange returns a float64 uniformly distributed in [minVal, maxVal)
func RandomInRange(sampler Sampler, minVal, maxVal float64) float64 {
	return minVal + sampler.Get1D()*(maxVal-minVal)
}

// RandomVec3InRange returns a vector whose components are uniform in [minVal, maxVal)
func RandomVec3InRange(sampler Sampler, minVal, maxVal float64) Vec3 {
	s := sampler.Get3D()
	span := maxVal - minVal
	return NewVec3(minVal+s.X*span, minVal+s.Y*span, minVal+s.Z*span)
}

// RandomUnitVector returns a uniformly distributed unit vector.
// Candidates are drawn from [-1,1]³ and kept only when their squared length is in
// (1e-8, 1), which excludes points too close to the origin to normalize reliably.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomVec3InRange(sampler, -1, 1)
		lensq := p.LengthSquared()
		if lensq > 1e-8 && lensq < 1 {
			return p.Normalize()
		}
	}
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		// Accept if inside unit disk
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
