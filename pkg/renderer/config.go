package renderer

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
)

// DefaultSeed is the base seed used when none is configured
const DefaultSeed = 42

// RenderConfig contains settings for one render call
type RenderConfig struct {
	Workers  int   // Number of column ranges rendered in parallel; <= 0 uses every logical CPU
	Seed     int64 // Base seed; worker k samples with Seed+k
	MaxDepth int   // Bounce limit; <= 0 uses integrator.DefaultMaxDepth
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Workers:  0,
		Seed:     DefaultSeed,
		MaxDepth: integrator.DefaultMaxDepth,
	}
}

// resolve fills in defaults for unset fields
func (c RenderConfig) resolve() RenderConfig {
	if c.Workers <= 0 {
		c.Workers = LogicalCPUs()
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = integrator.DefaultMaxDepth
	}
	return c
}

// LogicalCPUs returns the number of logical CPUs on the host
func LogicalCPUs() int {
	count, err := cpu.Counts(true)
	if err != nil || count <= 0 {
		return runtime.NumCPU()
	}
	return count
}
