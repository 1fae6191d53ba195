package scene

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewSpiralScene creates a rising helix of rainbow-tinted metal spheres around a
// mirror sphere, lit by a distant orange sun over a polished checkered floor
func NewSpiralScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:          core.NewVec3(0, 0.4, 0.8),
		LookAt:          core.NewVec3(0, 0, -2),
		Up:              core.NewVec3(0, 1, 0),
		VFov:            55.0,
		Width:           400,
		SamplesPerPixel: 100,
		DefocusAngle:    0.4,
		FocusDistance:   2.3,
	}

	s := newScene("spiral", defaultCameraConfig, core.NewVec3(0.05, 0.05, 0.1), cameraOverrides)

	// Sun
	s.AddSphere(core.NewVec3(10, 10, 10), 6, material.NewEmissive(core.NewVec3(1, 0.6, 0.1).Multiply(50)))

	s.AddSphere(core.NewVec3(0, 0.3, -1.5), 0.3,
		material.NewMetallic(core.NewVec3(1, 1, 1), 0.1, false))

	for i := 0; i < 150; i++ {
		step := float64(i)
		tint := material.HSVToRGB(math.Mod(step*20, 360), 1, 1).Multiply(0.5)
		albedo := core.NewVec3(0.5, 0.5, 0.5).Add(tint)

		position := core.NewVec3(math.Sin(step*0.1), step*0.01-0.5, math.Cos(step*0.1)-2)
		s.AddSphere(position, 0.1, material.NewMetallic(albedo, 0.1, false))
	}

	s.AddGround(material.NewCheckerBoard(
		material.NewMetallic(core.NewVec3(1, 1, 1), 0.05, false),
		material.NewMetallic(core.NewVec3(0.2, 0.2, 0.2), 0.01, false),
		5,
	))

	return s
}
