package material

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// HSVToRGB converts a hue in degrees with saturation and value in [0,1] to linear RGB.
// Hues outside [0,360) wrap around.
func HSVToRGB(h, s, v float64) core.Vec3 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := colorful.Hsv(h, s, v)
	return core.NewVec3(c.R, c.G, c.B)
}
