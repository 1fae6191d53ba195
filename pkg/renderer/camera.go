package renderer

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// PixelJitter is the half-width of the box filter applied to every sample, in pixels.
// Samples reach slightly past the pixel footprint into its neighbours.
const PixelJitter = 0.75

// CameraConfig contains all camera configuration parameters.
// The image is always square: height equals Width.
type CameraConfig struct {
	Center          core.Vec3 // Eye position
	LookAt          core.Vec3 // Point the camera is looking at
	Up              core.Vec3 // World up direction
	VFov            float64   // Vertical field of view in degrees
	Width           int       // Image width (and height) in pixels
	SamplesPerPixel int       // Rays traced per pixel
	DefocusAngle    float64   // Lens cone angle in degrees; negative disables depth of field
	FocusDistance   float64   // Distance from the eye to the plane of perfect focus
}

// MergeCameraConfig returns defaults with every non-zero field of override applied.
// A zero DefocusAngle cannot be expressed as an override; use a negative angle to disable defocus.
func MergeCameraConfig(defaults, override CameraConfig) CameraConfig {
	result := defaults

	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}

	return result
}

// Camera generates rays for rendering
type Camera struct {
	config CameraConfig

	center       core.Vec3
	pixel00      core.Vec3 // Center of pixel (0, 0), the top-left pixel
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	u, v, w      core.Vec3 // Camera frame: right, up, backward
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
	defocus      bool
}

// NewCamera creates a camera with the given configuration
func NewCamera(config CameraConfig) *Camera {
	width := max(1, config.Width)
	imageSize := float64(width)

	// Viewport spans 2*tan(fov/2) at unit distance, scaled out to the focus plane
	theta := degreesToRadians(config.VFov)
	viewportHeight := 2 * math.Tan(theta/2) * config.FocusDistance
	viewportWidth := viewportHeight

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Rows run downward through the image, so the vertical edge points along -v
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(imageSize)
	pixelDeltaV := viewportV.Divide(imageSize)

	viewportUpperLeft := config.Center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(degreesToRadians(config.DefocusAngle)/2)

	return &Camera{
		config:       config,
		center:       config.Center,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
		defocus:      config.DefocusAngle >= 0,
	}
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return max(1, c.config.Width)
}

// Height returns the image height in pixels; the aspect ratio is fixed at 1:1
func (c *Camera) Height() int {
	return c.Width()
}

// SamplesPerPixel returns the number of rays per pixel, at least one
func (c *Camera) SamplesPerPixel() int {
	return max(1, c.config.SamplesPerPixel)
}

// PixelCenter returns the world-space center of pixel (i, j); j counts rows from the top
func (c *Camera) PixelCenter(i, j int) core.Vec3 {
	return c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
}

// GetRay returns a camera ray for pixel (i, j), jittered within the box filter
// and, with depth of field enabled, leaving from a random point on the lens disk
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offsetU := core.RandomInRange(sampler, -PixelJitter, PixelJitter)
	offsetV := core.RandomInRange(sampler, -PixelJitter, PixelJitter)

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetU)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetV))

	origin := c.center
	if c.defocus {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// defocusDiskSample returns a random point on the camera's defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// degreesToRadians converts degrees to radians
func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
