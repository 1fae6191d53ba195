package server

import (
	"fmt"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// InspectResult is the closest primitive hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord *geometry.HitRecord
	Shape     geometry.Shape // The sphere or triangle that was hit
}

// inspectPixel casts a ray through the exact center of pixel (x, y), without jitter or defocus
func inspectPixel(sc *scene.Scene, x, y int) InspectResult {
	camera := sc.Camera()
	origin := sc.CameraConfig.Center
	ray := core.NewRay(origin, camera.PixelCenter(x, y).Subtract(origin))

	shape, hit := closestPrimitive(sc.World, ray, integrator.ShadowAcneEpsilon, math.Inf(1))
	if hit == nil {
		return InspectResult{Hit: false}
	}
	return InspectResult{Hit: true, HitRecord: hit, Shape: shape}
}

// closestPrimitive is Aggregate.Hit that also reports which leaf shape was hit
func closestPrimitive(shape geometry.Shape, ray core.Ray, tMin, tMax float64) (geometry.Shape, *geometry.HitRecord) {
	agg, ok := shape.(*geometry.Aggregate)
	if !ok {
		if hit, isHit := shape.Hit(ray, tMin, tMax); isHit {
			return shape, hit
		}
		return nil, nil
	}

	var closestShape geometry.Shape
	var closestHit *geometry.HitRecord
	for _, child := range agg.Shapes {
		if leaf, hit := closestPrimitive(child, ray, tMin, tMax); hit != nil {
			closestShape, closestHit = leaf, hit
			tMax = hit.T
		}
	}
	return closestShape, closestHit
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(v core.Vec3) string {
	c := v.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractMaterialInfo extracts detailed material information with type assertions.
// Checkerboards also report the sub-material selected at point.
func (s *Server) extractMaterialInfo(mat material.Material, point core.Vec3) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Diffuse:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)

	case *material.Metallic:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzz"] = m.Fuzz
		properties["diffuseBlend"] = m.DiffuseBlend

	case *material.Emissive:
		properties["emission"] = vecArray(m.Emission)
		properties["color"] = hexColor(m.Emission)

	case *material.ProceduralNoise:
		emission := m.Emit(point)
		properties["emission"] = vecArray(emission)
		properties["color"] = hexColor(emission)

	case *material.CheckerBoard:
		properties["scale"] = m.Scale
		selectedType, selectedProps := s.extractMaterialInfo(m.Select(point), point)
		properties["selected"] = map[string]interface{}{
			"type":       selectedType,
			"properties": selectedProps,
		}

	case nil:
		return "none", properties
	}

	return mat.Kind(), properties
}

// extractGeometryInfo extracts detailed geometry information with type assertions
func (s *Server) extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Triangle:
		properties["vertices"] = [3][3]float64{vecArray(geom.A), vecArray(geom.B), vecArray(geom.C)}
		properties["normal"] = vecArray(geom.Normal())
		return "triangle", properties

	default:
		return "unknown", properties
	}
}

// handleInspect reports what the center ray of a pixel hits
func (s *Server) handleInspect(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
	}

	sc, err := scene.Create(req.Scene, req.cameraOverride())
	if err != nil {
		return errorJSON(c, http.StatusNotFound, err.Error())
	}

	size := sc.Camera().Width()
	pixelX, err := parseIntParam(c.QueryParams(), "x", -1, 0, size-1)
	if err != nil || pixelX < 0 {
		return errorJSON(c, http.StatusBadRequest, "Invalid x coordinate")
	}
	pixelY, err := parseIntParam(c.QueryParams(), "y", -1, 0, size-1)
	if err != nil || pixelY < 0 {
		return errorJSON(c, http.StatusBadRequest, "Invalid y coordinate")
	}

	result := inspectPixel(sc, pixelX, pixelY)
	if !result.Hit {
		return c.JSON(http.StatusOK, InspectResponse{Hit: false})
	}

	hit := result.HitRecord
	materialType, materialProps := s.extractMaterialInfo(hit.Material, hit.Point)
	geometryType, geometryProps := s.extractGeometryInfo(result.Shape)

	return c.JSON(http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecArray(hit.Point),
		Normal:       vecArray(hit.Normal),
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
