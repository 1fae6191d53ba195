package scene

import (
	"math"
	"math/rand"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewSphereFieldScene creates three hero spheres over a checkered floor
// surrounded by a hundred randomly placed metal and glowing spheres
func NewSphereFieldScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:          core.NewVec3(0, 0.1, 0.5),
		LookAt:          core.NewVec3(0, -0.2, -1.5),
		Up:              core.NewVec3(0, 1, 0),
		VFov:            60.0,
		Width:           400,
		SamplesPerPixel: 100,
		DefocusAngle:    0.6,
		FocusDistance:   1.6,
	}

	s := newScene("sphere-field", defaultCameraConfig, core.NewVec3(0.15, 0.2, 0.3), cameraOverrides)

	s.AddSphere(core.NewVec3(0.3, -0.3, -1), 0.2, material.NewCheckerBoard(
		material.NewEmissive(core.NewVec3(0.8, 0.2, 0.2).Multiply(5)),
		material.NewMetallic(core.NewVec3(0.8, 1.0, 1.0), 0.2, false),
		15,
	))
	s.AddSphere(core.NewVec3(-0.5, -0.3, -2), 0.5,
		material.NewMetallic(core.NewVec3(0.8, 0.6, 0.1), 0.3, false))
	s.AddSphere(core.NewVec3(1.5, -0.3, -2), 1.0,
		material.NewMetallic(core.NewVec3(0.9, 0.9, 1.0), 0.0, false))

	// Fixed seed so the field is the same on every run
	random := rand.New(rand.NewSource(0x30))
	for i := 0; i < 100; i++ {
		position := core.NewVec3(
			-5+10*random.Float64(),
			-0.5+5.5*random.Float64(),
			-5+10*random.Float64(),
		)

		var mat material.Material
		if random.Intn(5) != 0 {
			albedo := core.NewVec3(0.5, 0.5, 0.5).Add(core.NewVec3(random.Float64(), random.Float64(), random.Float64()).Multiply(0.5))
			mat = material.NewMetallic(albedo, 0.5*random.Float64(), false)
		} else {
			mat = material.NewEmissive(core.NewVec3(random.Float64(), random.Float64(), random.Float64()).Multiply(3))
		}

		radius := 2.5 / math.Pow(2, 1+4*random.Float64())
		s.AddSphere(position, radius, mat)
	}

	s.AddGround(material.NewCheckerBoard(
		material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.8)),
		material.NewMetallic(core.NewVec3(0.8, 1.0, 1.0), 0.2, false),
		5,
	))

	return s
}
