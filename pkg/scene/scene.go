package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.Aggregate   // Objects in the scene
	CameraConfig renderer.CameraConfig // Recommended camera
	Ambient      core.Vec3             // Color returned by rays that escape the scene
}

// newScene creates an empty scene whose camera is defaults merged with the first override
func newScene(name string, defaults renderer.CameraConfig, ambient core.Vec3, cameraOverrides []renderer.CameraConfig) *Scene {
	cameraConfig := defaults
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaults, cameraOverrides[0])
	}

	return &Scene{
		Name:         name,
		World:        geometry.NewAggregate(),
		CameraConfig: cameraConfig,
		Ambient:      ambient,
	}
}

// Camera builds the camera for the scene's configuration
func (s *Scene) Camera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.PrimitiveCount()
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.World.Add(geometry.NewSphere(center, radius, mat))
}

// AddParallelogram adds the parallelogram with corners a, b, c and c + (a - b)
func (s *Scene) AddParallelogram(a, b, c core.Vec3, mat material.Material) {
	s.World.AddParallelogram(a, b, c, mat)
}

// AddGround adds a 1000x2000 horizontal floor at y = -0.5
func (s *Scene) AddGround(mat material.Material) {
	offset := core.NewVec3(0, 0.5, 0)
	s.AddParallelogram(
		core.NewVec3(-1, 0, -2).Multiply(500).Subtract(offset),
		core.NewVec3(-1, 0, 2).Multiply(500).Subtract(offset),
		core.NewVec3(1, 0, 2).Multiply(500).Subtract(offset),
		mat,
	)
}
