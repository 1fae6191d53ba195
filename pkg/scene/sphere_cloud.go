package scene

import (
	"math/rand"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewSphereCloudScene creates a colored box lit by a ceiling panel, holding a cloud
// of two hundred small white spheres
func NewSphereCloudScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:          core.NewVec3(0, 0, 0.9),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		VFov:            60.0,
		Width:           400,
		SamplesPerPixel: 200,
		DefocusAngle:    -1,
		FocusDistance:   1.5,
	}

	s := newScene("sphere-cloud", defaultCameraConfig, core.Vec3{}, cameraOverrides)

	s.AddGround(material.NewCheckerBoard(
		material.NewDiffuse(core.NewVec3(1, 1, 1)),
		material.NewDiffuse(core.NewVec3(0, 0, 0)),
		8,
	))

	// Ceiling light, just below the ceiling
	s.AddParallelogram(
		core.NewVec3(-0.2, 0.499, -0.8),
		core.NewVec3(-0.2, 0.499, -0.6),
		core.NewVec3(0.2, 0.499, -0.6),
		material.NewEmissive(core.NewVec3(10, 10, 10)),
	)

	white := material.NewDiffuse(core.NewVec3(1, 1, 1))

	// Right wall (green), left wall (red)
	s.AddParallelogram(core.NewVec3(0.5, -0.5, -1), core.NewVec3(0.5, -0.5, 0), core.NewVec3(0.5, 0.5, 0),
		material.NewDiffuse(core.NewVec3(0, 1, 0)))
	s.AddParallelogram(core.NewVec3(-0.5, -0.5, -1), core.NewVec3(-0.5, -0.5, 0), core.NewVec3(-0.5, 0.5, 0),
		material.NewDiffuse(core.NewVec3(1, 0, 0)))

	// Ceiling and back wall
	s.AddParallelogram(core.NewVec3(-0.5, 0.5, -1), core.NewVec3(-0.5, 0.5, 0), core.NewVec3(0.5, 0.5, 0), white)
	s.AddParallelogram(core.NewVec3(-0.5, 0.5, -1), core.NewVec3(0.5, 0.5, -1), core.NewVec3(0.5, -0.5, -1), white)

	random := rand.New(rand.NewSource(0))
	for i := 0; i < 200; i++ {
		position := core.NewVec3(
			-0.15+0.3*random.Float64(),
			-0.15+0.3*random.Float64(),
			-0.7+0.2*random.Float64(),
		)
		s.AddSphere(position, 0.05, white)
	}

	return s
}
