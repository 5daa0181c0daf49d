package scene

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

func testLight() *geometry.Sphere {
	return geometry.NewSphere(core.NewVec3(0, 30, 10), 5, material.White().WithEmission(core.NewVec3(255, 255, 255)))
}

func TestScene_FirstIntersectionPicksClosest(t *testing.T) {
	s := New(geometry.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), testLight())

	// Farther object added first so insertion order cannot decide
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, 50), 5, material.Blue()),
		geometry.NewTriangle(core.NewVec3(-10, -10, 80), core.NewVec3(10, -10, 80), core.NewVec3(0, 10, 80), material.Green()),
		geometry.NewSphere(core.NewVec3(0, 0, 20), 2, material.Red()),
	)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	hit, ok := s.FirstIntersection(ray)
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.Distance-18) > 1e-9 {
		t.Errorf("Expected distance 18, got %f", hit.Distance)
	}
	if hit.Material.BaseColor != material.Red().BaseColor {
		t.Errorf("Expected red sphere, got %v", hit.Material.BaseColor)
	}
}

func TestScene_FirstIntersectionIncludesLight(t *testing.T) {
	light := testLight()
	s := New(geometry.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), light)
	s.Add(geometry.NewSphere(core.NewVec3(0, 100, 10), 5, material.Red()))

	ray := core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 1, 0))
	hit, ok := s.FirstIntersection(ray)
	if !ok {
		t.Fatal("Expected hit")
	}
	if !hit.Material.IsEmissive() {
		t.Error("Expected the light to be the first intersection")
	}
	if math.Abs(hit.Distance-25) > 1e-9 {
		t.Errorf("Expected distance 25, got %f", hit.Distance)
	}
}

func TestScene_EmptySceneMisses(t *testing.T) {
	s := New(geometry.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if _, ok := s.FirstIntersection(ray); ok {
		t.Error("Expected miss in empty scene")
	}
	if s.HitsLight(ray) {
		t.Error("Expected no light in empty scene")
	}
	if s.GetPrimitiveCount() != 0 {
		t.Errorf("Expected 0 primitives, got %d", s.GetPrimitiveCount())
	}
}

func TestScene_HitsLight(t *testing.T) {
	s := New(geometry.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), testLight())
	s.Add(
		geometry.NewSphere(core.NewVec3(10, 15, 10), 3, material.Red()),
		geometry.NewSphere(core.NewVec3(20, 60, 10), 3, material.Blue()),
	)

	tests := []struct {
		name     string
		ray      core.Ray
		expected bool
	}{
		{"unobstructed", core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 1, 0)), true},
		{"misses light", core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(1, 0, 0)), false},
		{"occluded", core.NewRay(core.NewVec3(20, 0, 10), core.NewVec3(-20, 30, 0)), false},
		{"object beyond light", core.NewRay(core.NewVec3(-20, 0, 10), core.NewVec3(20, 30, 0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.HitsLight(tt.ray); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestScene_Validate(t *testing.T) {
	camera := geometry.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	valid := New(camera, testLight())
	if err := valid.Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	darkLight := New(camera, geometry.NewSphere(core.NewVec3(0, 0, 10), 1, material.White()))
	if err := darkLight.Validate(); err == nil {
		t.Error("Expected error for non-emissive light")
	}

	badObject := New(camera, testLight())
	badObject.Add(geometry.NewSphere(core.NewVec3(0, 0, 10), -1, material.White()))
	if err := badObject.Validate(); err == nil {
		t.Error("Expected error for invalid sphere")
	}

	if err := (&Scene{}).Validate(); err == nil {
		t.Error("Expected error for missing camera")
	}
}

func TestNewRoomScene(t *testing.T) {
	s := NewRoomScene()
	if err := s.Validate(); err != nil {
		t.Fatalf("Room scene should be valid: %v", err)
	}

	// 4 spheres + 6 walls of 2 triangles + light
	if got := s.GetPrimitiveCount(); got != 17 {
		t.Errorf("Expected 17 primitives, got %d", got)
	}
	if s.LightPosition() != core.NewVec3(0, 30, 10) {
		t.Errorf("Expected light at (0,30,10), got %v", s.LightPosition())
	}

	// The room is closed: rays in every axis direction hit something
	for _, dir := range []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
	} {
		if _, ok := s.FirstIntersection(core.NewRay(core.NewVec3(0, 0, 10), dir)); !ok {
			t.Errorf("Expected ray toward %v to hit a wall", dir)
		}
	}
}

func TestScene_EmissiveObjects(t *testing.T) {
	s := New(geometry.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), testLight())
	glow := material.Pink().WithEmission(core.NewVec3(40, 40, 40))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 25), 5, glow))

	if err := s.Validate(); err != nil {
		t.Fatalf("Emissive objects besides the light should be accepted: %v", err)
	}

	hit, ok := s.FirstIntersection(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))
	if !ok {
		t.Fatal("Expected hit")
	}
	if !hit.Material.IsEmissive() || *hit.Material.Emission != core.NewVec3(40, 40, 40) {
		t.Errorf("Expected the emissive object, got %+v", hit.Material)
	}
	if s.LightPosition() != core.NewVec3(0, 30, 10) {
		t.Errorf("Light position should come from the light, got %v", s.LightPosition())
	}
}
