package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewCheckerRoomScene creates a small open-fronted room with mirror side walls,
// a glowing checkerboard back wall and two metal spheres
func NewCheckerRoomScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:          core.NewVec3(0, 0, 0.35),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		VFov:            50.0,
		Width:           400,
		SamplesPerPixel: 100,
		DefocusAngle:    -1, // Pinhole
		FocusDistance:   1.6,
	}

	s := newScene("checker-room", defaultCameraConfig, core.NewVec3(0.1, 0.1, 0.12), cameraOverrides)

	s.AddSphere(core.NewVec3(0.3, -0.3, -1), 0.2,
		material.NewMetallic(core.NewVec3(1.0, 0.2, 0.2), 0.4, false))
	s.AddSphere(core.NewVec3(-0.4, -0.5, -1.3), 0.3,
		material.NewMetallic(core.NewVec3(0.8, 1.0, 1.0), 0.0, false))

	// Floor
	s.AddParallelogram(
		core.NewVec3(-1, -0.5, -2),
		core.NewVec3(-1, -0.5, 2),
		core.NewVec3(1, -0.5, 2),
		material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.8)),
	)

	// Back wall: fine red light cells alternating with black
	s.AddParallelogram(
		core.NewVec3(0.5, -0.5, -1.25),
		core.NewVec3(-0.5, -0.5, -1.25),
		core.NewVec3(-0.5, 0.5, -1.25),
		material.NewCheckerBoard(
			material.NewEmissive(core.NewVec3(0.8, 0.2, 0.2).Multiply(3)),
			material.NewDiffuse(core.NewVec3(0, 0, 0)),
			15,
		),
	)

	// Ceiling
	s.AddParallelogram(
		core.NewVec3(0.5, 0.5, -1.25),
		core.NewVec3(-0.5, 0.5, -1.25),
		core.NewVec3(-0.5, 0.5, -0.75),
		material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.8)),
	)

	// Right wall
	s.AddParallelogram(
		core.NewVec3(0.5, -0.5, -1.25),
		core.NewVec3(0.5, -0.5, -0.75),
		core.NewVec3(0.5, 0.5, -0.75),
		material.NewMetallic(core.NewVec3(1, 1, 1), 0.2, false),
	)

	// Left wall
	s.AddParallelogram(
		core.NewVec3(-0.5, -0.5, -1.25),
		core.NewVec3(-0.5, -0.5, -0.75),
		core.NewVec3(-0.5, 0.5, -0.75),
		material.NewMetallic(core.NewVec3(0.4, 0.4, 0.4), 0.5, false),
	)

	return s
}
