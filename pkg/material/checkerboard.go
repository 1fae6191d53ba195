package material

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// CheckerBoard selects between two materials on a 3D lattice.
// It is not shaded itself: the integrator re-dispatches on the selected material.
type CheckerBoard struct {
	A     Material
	B     Material
	Scale float64 // Cells per world unit
}

// NewCheckerBoard creates a new checkerboard selector
func NewCheckerBoard(a, b Material, scale float64) *CheckerBoard {
	return &CheckerBoard{A: a, B: b, Scale: scale}
}

func (c *CheckerBoard) Kind() string { return KindCheckerBoard }
func (c *CheckerBoard) sealed()      {}

// Select returns the sub-material for the lattice cell containing point.
// When the x and z cell parities agree, even y picks A; otherwise even y picks B.
func (c *CheckerBoard) Select(point core.Vec3) Material {
	evenY := cellParity(point.Y*c.Scale) == 0
	if cellParity(point.X*c.Scale) == cellParity(point.Z*c.Scale) {
		if evenY {
			return c.A
		}
		return c.B
	}
	if evenY {
		return c.B
	}
	return c.A
}

// cellParity returns 0 or 1 for the cell that v falls into.
// Working in float64 keeps huge coordinates from overflowing an int.
func cellParity(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Mod(math.Abs(math.Floor(v)), 2))
}
