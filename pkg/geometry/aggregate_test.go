package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

func TestAggregate_NearestHitRegardlessOfOrder(t *testing.T) {
	nearMat := material.NewDiffuse(core.NewVec3(1, 0, 0))
	farMat := material.NewDiffuse(core.NewVec3(0, 0, 1))
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, nearMat)
	far := NewSphere(core.NewVec3(0, 0, -2.6), 0.5, farMat)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	orders := []struct {
		name   string
		shapes []Shape
	}{
		{"near first", []Shape{near, far}},
		{"far first", []Shape{far, near}},
	}

	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregate(tt.shapes...)
			hit, isHit := agg.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("Expected t=1.5, got t=%f", hit.T)
			}
			if hit.Material != material.Material(nearMat) {
				t.Errorf("Expected nearer sphere's material, got %v", hit.Material)
			}
		})
	}
}

func TestAggregate_Empty(t *testing.T) {
	agg := NewAggregate()
	hit, isHit := agg.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), 0.001, 1000)
	if isHit {
		t.Error("Expected no hit for empty aggregate")
	}
	if hit != nil {
		t.Error("Expected nil hit record for empty aggregate")
	}
}

func TestAggregate_RespectsTMax(t *testing.T) {
	agg := NewAggregate(NewSphere(core.NewVec3(0, 0, -5), 1, grey))
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	if _, isHit := agg.Hit(ray, 0.001, 3); isHit {
		t.Error("Expected miss beyond tMax")
	}
}

func TestAggregate_Nested(t *testing.T) {
	inner := NewAggregate(NewSphere(core.NewVec3(0, 0, -3), 0.5, grey))
	outer := NewAggregate(inner, NewSphere(core.NewVec3(0, 0, -10), 0.5, grey))

	hit, isHit := outer.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit through nested aggregate")
	}
	if math.Abs(hit.T-2.5) > 1e-9 {
		t.Errorf("Expected t=2.5, got t=%f", hit.T)
	}
	if got := outer.PrimitiveCount(); got != 2 {
		t.Errorf("Expected 2 primitives, got %d", got)
	}
}

func TestAggregate_CloneIsDeep(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -2), 0.5, grey)
	inner := NewAggregate(NewTriangle(core.NewVec3(-1, -1, -5), core.NewVec3(1, -1, -5), core.NewVec3(0, 1, -5), grey))
	agg := NewAggregate(sphere, inner)

	clone := agg.CloneAggregate()
	if clone.Len() != agg.Len() {
		t.Fatalf("Expected %d shapes, got %d", agg.Len(), clone.Len())
	}

	clonedSphere := clone.Shapes[0].(*Sphere)
	if clonedSphere == sphere {
		t.Fatal("Expected cloned sphere to be a distinct value")
	}
	clonedSphere.Center = core.NewVec3(100, 100, 100)
	if sphere.Center != core.NewVec3(0, 0, -2) {
		t.Errorf("Mutating clone changed original: %v", sphere.Center)
	}

	clonedInner := clone.Shapes[1].(*Aggregate)
	if clonedInner == inner || clonedInner.Shapes[0] == inner.Shapes[0] {
		t.Error("Expected nested aggregate and its shapes to be cloned")
	}

	clone.Add(NewSphere(core.Vec3{}, 1, grey))
	if agg.Len() != 2 {
		t.Errorf("Appending to clone changed original length to %d", agg.Len())
	}
}

func TestAggregate_AddParallelogram(t *testing.T) {
	agg := NewAggregate()
	agg.AddParallelogram(
		core.NewVec3(-1, -0.5, -2),
		core.NewVec3(-1, -0.5, 2),
		core.NewVec3(1, -0.5, 2),
		grey,
	)

	if agg.Len() != 2 {
		t.Fatalf("Expected 2 triangles, got %d", agg.Len())
	}

	// The fourth corner is c + (a - b) = (1, -0.5, -2); both halves must be reachable
	points := []core.Vec3{
		core.NewVec3(-0.5, -0.5, 1.0),
		core.NewVec3(0.5, -0.5, -1.0),
	}
	for _, p := range points {
		ray := core.NewRay(core.NewVec3(p.X, 1, p.Z), core.NewVec3(0, -1, 0))
		hit, isHit := agg.Hit(ray, 0.001, 100)
		if !isHit {
			t.Errorf("Expected hit at %v", p)
			continue
		}
		if math.Abs(hit.T-1.5) > 1e-9 {
			t.Errorf("Expected t=1.5 at %v, got %f", p, hit.T)
		}
	}
}
