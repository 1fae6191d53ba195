package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewNoiseOrbScene creates a procedural noise sphere next to a white light
// on a black and white checkered floor, with a single white wall
func NewNoiseOrbScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:          core.NewVec3(0, 0.1, 0),
		LookAt:          core.NewVec3(0, -0.15, -1.5),
		Up:              core.NewVec3(0, 1, 0),
		VFov:            75.0,
		Width:           400,
		SamplesPerPixel: 100,
		DefocusAngle:    -1,
		FocusDistance:   1.5,
	}

	s := newScene("noise-orb", defaultCameraConfig, core.NewVec3(0.02, 0.02, 0.03), cameraOverrides)

	s.AddSphere(core.NewVec3(1, -0.1, -1.5), 0.3, material.NewEmissive(core.NewVec3(4, 4, 4)))
	s.AddSphere(core.NewVec3(-1, -0.2, -1.5), 0.3, material.NewProceduralNoise())

	s.AddGround(material.NewCheckerBoard(
		material.NewDiffuse(core.NewVec3(1, 1, 1)),
		material.NewDiffuse(core.NewVec3(0, 0, 0)),
		8,
	))

	// Wall between the two spheres
	s.AddParallelogram(
		core.NewVec3(0.6, -0.5, -2),
		core.NewVec3(0.6, -0.5, -1),
		core.NewVec3(0.6, 1, -1),
		material.NewDiffuse(core.NewVec3(1, 1, 1)),
	)

	return s
}
