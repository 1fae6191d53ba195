package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

func TestTriangle_Hit(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(-1, -1, -2),
		core.NewVec3(1, -1, -2),
		core.NewVec3(0, 1, -2),
		grey,
	)
	origin := core.NewVec3(0, 0, 0)

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits triangle interior",
			ray:       core.NewRay(origin, core.NewVec3(0, 0, -1)),
			shouldHit: true,
			expectedT: 2.0,
		},
		{
			name:      "Ray aimed far outside",
			ray:       core.NewRay(origin, core.NewVec3(10, 10, -2)),
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle plane",
			ray:       core.NewRay(origin, core.NewVec3(1, 0, 0)),
			shouldHit: false,
		},
		{
			name:      "Ray pointing away",
			ray:       core.NewRay(origin, core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
		{
			name:      "Ray hits from behind",
			ray:       core.NewRay(core.NewVec3(0, 0, -4), core.NewVec3(0, 0, 1)),
			shouldHit: true,
			expectedT: 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := triangle.Hit(tt.ray, 0.001, math.Inf(1))

			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got hit=%t", tt.shouldHit, isHit)
			}
			if !tt.shouldHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal.Dot(tt.ray.Direction) >= 0 {
				t.Errorf("Expected normal %v to oppose ray direction %v", hit.Normal, tt.ray.Direction)
			}
		})
	}
}

func TestTriangle_FaceNormal(t *testing.T) {
	// Counter-clockwise when viewed from +z
	triangle := NewTriangle(core.NewVec3(-1, -1, -2), core.NewVec3(1, -1, -2), core.NewVec3(0, 1, -2), grey)

	if !vecNear(triangle.Normal(), core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected normal (0,0,1), got %v", triangle.Normal())
	}

	front, _ := triangle.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, 100)
	if !front.FrontFace || !vecNear(front.Normal, core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected front face with normal (0,0,1), got front=%t normal=%v", front.FrontFace, front.Normal)
	}

	back, _ := triangle.Hit(core.NewRay(core.NewVec3(0, 0, -4), core.NewVec3(0, 0, 1)), 0.001, 100)
	if back.FrontFace || !vecNear(back.Normal, core.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Expected back face with normal (0,0,-1), got front=%t normal=%v", back.FrontFace, back.Normal)
	}
}

func TestTriangle_Degenerate(t *testing.T) {
	collinear := NewTriangle(core.NewVec3(0, 0, -1), core.NewVec3(1, 0, -1), core.NewVec3(2, 0, -1), grey)

	directions := []core.Vec3{
		core.NewVec3(0, 0, -1),
		core.NewVec3(0.5, 0, -1),
		core.NewVec3(1, 0.1, -1),
	}
	for _, dir := range directions {
		if hit, isHit := collinear.Hit(core.NewRay(core.Vec3{}, dir), 0.001, 1000); isHit {
			t.Errorf("Expected collinear triangle to never hit, got t=%f for %v", hit.T, dir)
		}
	}

	if n := collinear.Normal(); !n.IsFinite() {
		t.Errorf("Expected finite normal for degenerate triangle, got %v", n)
	}
}

func TestTriangle_Bounds(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(-1, -1, -2), core.NewVec3(1, -1, -2), core.NewVec3(0, 1, -2), grey)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	if _, isHit := triangle.Hit(ray, 0.001, 1.5); isHit {
		t.Error("Expected miss due to tMax bound")
	}
	if _, isHit := triangle.Hit(ray, 2.5, 100); isHit {
		t.Error("Expected miss due to tMin bound")
	}
}
