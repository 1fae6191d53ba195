package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// ---------- JSON scene description ----------
// Vectors are written as {"x": 1, "y": 2, "z": 3}.

// MaterialCfg is one node of a material tree; checkers nest two more
type MaterialCfg struct {
	Type         string       `json:"type"` // diffuse, emissive, metallic, checker or noise
	Albedo       core.Vec3    `json:"albedo"`
	Emission     core.Vec3    `json:"emission"`
	Fuzz         float64      `json:"fuzz,omitempty"`
	DiffuseBlend bool         `json:"diffuseBlend,omitempty"`
	A            *MaterialCfg `json:"a,omitempty"` // checker only
	B            *MaterialCfg `json:"b,omitempty"` // checker only
	Scale        float64      `json:"scale,omitempty"`
}

type SphereCfg struct {
	Center   core.Vec3   `json:"center"`
	Radius   float64     `json:"radius"`
	Material MaterialCfg `json:"material"`
}

type TriangleCfg struct {
	A        core.Vec3   `json:"a"`
	B        core.Vec3   `json:"b"`
	C        core.Vec3   `json:"c"`
	Material MaterialCfg `json:"material"`
}

type CameraCfg struct {
	Center          core.Vec3 `json:"center"`
	LookAt          core.Vec3 `json:"lookAt"`
	Up              core.Vec3 `json:"up"`
	VFov            float64   `json:"vfov"`
	Width           int       `json:"width"`
	SamplesPerPixel int       `json:"samplesPerPixel"`
	DefocusAngle    float64   `json:"defocusAngle"`
	FocusDistance   float64   `json:"focusDistance"`
}

type Config struct {
	Name           string        `json:"name,omitempty"`
	Camera         CameraCfg     `json:"camera"`
	Ambient        core.Vec3     `json:"ambient"`
	Spheres        []SphereCfg   `json:"spheres,omitempty"`
	Triangles      []TriangleCfg `json:"triangles,omitempty"`
	Parallelograms []TriangleCfg `json:"parallelograms,omitempty"` // fourth corner is c + (a - b)
}

// Build validates and constructs the material tree (no defaults)
func (mc *MaterialCfg) Build() (material.Material, error) {
	switch mc.Type {
	case material.KindDiffuse:
		return material.NewDiffuse(mc.Albedo), nil
	case material.KindEmissive:
		return material.NewEmissive(mc.Emission), nil
	case material.KindMetallic:
		if mc.Fuzz < 0 || mc.Fuzz > 1 {
			return nil, fmt.Errorf("metallic fuzz must be in [0,1], got %g", mc.Fuzz)
		}
		return material.NewMetallic(mc.Albedo, mc.Fuzz, mc.DiffuseBlend), nil
	case material.KindCheckerBoard:
		if mc.A == nil || mc.B == nil {
			return nil, fmt.Errorf("checker needs both sub-materials a and b")
		}
		if mc.Scale <= 0 {
			return nil, fmt.Errorf("checker scale must be > 0, got %g", mc.Scale)
		}
		a, err := mc.A.Build()
		if err != nil {
			return nil, fmt.Errorf("checker a: %w", err)
		}
		b, err := mc.B.Build()
		if err != nil {
			return nil, fmt.Errorf("checker b: %w", err)
		}
		return material.NewCheckerBoard(a, b, mc.Scale), nil
	case material.KindProceduralNoise:
		return material.NewProceduralNoise(), nil
	case "":
		return nil, fmt.Errorf("material type is required")
	default:
		return nil, fmt.Errorf("unknown material type %q", mc.Type)
	}
}

// Build validates the camera; every field is required
func (cc CameraCfg) Build() (renderer.CameraConfig, error) {
	if cc.Width <= 0 {
		return renderer.CameraConfig{}, fmt.Errorf("camera width must be > 0, got %d", cc.Width)
	}
	if cc.SamplesPerPixel <= 0 {
		return renderer.CameraConfig{}, fmt.Errorf("camera samplesPerPixel must be > 0, got %d", cc.SamplesPerPixel)
	}
	if cc.VFov <= 0 || cc.VFov >= 180 {
		return renderer.CameraConfig{}, fmt.Errorf("camera vfov must be in (0,180), got %g", cc.VFov)
	}
	if cc.FocusDistance <= 0 {
		return renderer.CameraConfig{}, fmt.Errorf("camera focusDistance must be > 0, got %g", cc.FocusDistance)
	}
	if cc.Center == cc.LookAt {
		return renderer.CameraConfig{}, fmt.Errorf("camera center and lookAt must differ")
	}
	if cc.Up == (core.Vec3{}) {
		return renderer.CameraConfig{}, fmt.Errorf("camera up must be non-zero")
	}
	// An up vector along the view direction leaves the camera without a horizontal axis
	forward := cc.Center.Subtract(cc.LookAt)
	if cc.Up.Cross(forward).LengthSquared() < 1e-12*cc.Up.LengthSquared()*forward.LengthSquared() {
		return renderer.CameraConfig{}, fmt.Errorf("camera up must not be parallel to the view direction")
	}

	return renderer.CameraConfig{
		Center:          cc.Center,
		LookAt:          cc.LookAt,
		Up:              cc.Up,
		VFov:            cc.VFov,
		Width:           cc.Width,
		SamplesPerPixel: cc.SamplesPerPixel,
		DefocusAngle:    cc.DefocusAngle,
		FocusDistance:   cc.FocusDistance,
	}, nil
}

// Build constructs the scene described by the config
func (cfg *Config) Build(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	cameraConfig, err := cfg.Camera.Build()
	if err != nil {
		return nil, err
	}

	name := cfg.Name
	if name == "" {
		name = "custom"
	}
	s := newScene(name, cameraConfig, cfg.Ambient, cameraOverrides)

	for i, sc := range cfg.Spheres {
		if sc.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius must be > 0, got %g", i, sc.Radius)
		}
		mat, err := sc.Material.Build()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.AddSphere(sc.Center, sc.Radius, mat)
	}

	for i, tc := range cfg.Triangles {
		mat, err := tc.Material.Build()
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		s.World.Add(geometry.NewTriangle(tc.A, tc.B, tc.C, mat))
	}

	for i, pc := range cfg.Parallelograms {
		mat, err := pc.Material.Build()
		if err != nil {
			return nil, fmt.Errorf("parallelogram %d: %w", i, err)
		}
		s.AddParallelogram(pc.A, pc.B, pc.C, mat)
	}

	return s, nil
}

// Parse decodes a JSON scene description. Unknown keys are rejected.
func Parse(data []byte, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return cfg.Build(cameraOverrides...)
}

// LoadFile reads and builds the JSON scene at path
func LoadFile(path string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data, cameraOverrides...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
