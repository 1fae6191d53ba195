package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewMirrorBoxScene creates a snowman of rough blended-metal spheres standing in a
// room of perfect mirrors, lit by a warm and a cool light
func NewMirrorBoxScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:          core.NewVec3(0, 0.1, -0.3),
		LookAt:          core.NewVec3(0, -0.1, -1.5),
		Up:              core.NewVec3(0, 1, 0),
		VFov:            60.0,
		Width:           400,
		SamplesPerPixel: 100,
		DefocusAngle:    -1,
		FocusDistance:   1.2,
	}

	s := newScene("mirror-box", defaultCameraConfig, core.Vec3{}, cameraOverrides)

	// Eyes
	eye := material.NewDiffuse(core.NewVec3(0.2, 0.2, 0.3))
	s.AddSphere(core.NewVec3(-0.05, 0.02, -1.39), 0.02, eye)
	s.AddSphere(core.NewVec3(0.05, 0.02, -1.39), 0.02, eye)

	// Lights
	s.AddSphere(core.NewVec3(-0.5, 1, -1.5), 0.2, material.NewEmissive(core.NewVec3(1, 0.5, 0.3).Multiply(20)))
	s.AddSphere(core.NewVec3(0.5, 1, -1.5), 0.2, material.NewEmissive(core.NewVec3(0.2, 0.5, 1).Multiply(20)))

	// Body
	snow := material.NewMetallic(core.NewVec3(1, 1, 1), 0.8, true)
	s.AddSphere(core.NewVec3(0, 0, -1.5), 0.13, snow)
	s.AddSphere(core.NewVec3(0, -0.15, -1.5), 0.15, snow)
	s.AddSphere(core.NewVec3(0, -0.4, -1.5), 0.2, snow)

	s.AddGround(material.NewCheckerBoard(
		material.NewDiffuse(core.NewVec3(1, 1, 1)),
		material.NewDiffuse(core.NewVec3(0.2, 0.2, 0.3)),
		5,
	))

	mirror := material.NewMetallic(core.NewVec3(1, 1, 1), 0, false)

	// Left, right, back and front walls
	s.AddParallelogram(core.NewVec3(-1, -0.5, -2), core.NewVec3(-1, -0.5, 2), core.NewVec3(-1, 3, 2), mirror)
	s.AddParallelogram(core.NewVec3(1, -0.5, -2), core.NewVec3(1, -0.5, 2), core.NewVec3(1, 3, 2), mirror)
	s.AddParallelogram(core.NewVec3(-1, -0.5, -2), core.NewVec3(1, -0.5, -2), core.NewVec3(1, 3, -2), mirror)
	s.AddParallelogram(core.NewVec3(-1, -0.5, 0), core.NewVec3(1, -0.5, 0), core.NewVec3(1, 3, 0), mirror)

	return s
}
