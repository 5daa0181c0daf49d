package geometry

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCamera_PrimaryRayReferenceProjection(t *testing.T) {
	camera := NewCamera(core.NewVec3(1, 2, 3), core.NewVec3(0, 0, 1))

	tests := []struct {
		name     string
		px, py   float64
		expected core.Vec3
	}{
		{"center", 0, 0, core.NewVec3(0, 0, 1)},
		{"right", 500, 0, core.NewVec3(1, 0, 1).Normalize()},
		{"up", 0, 500, core.NewVec3(0, 1, 1).Normalize()},
		{"lower left", -250, -250, core.NewVec3(-250, -250, 500).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.PrimaryRay(tt.px, tt.py)
			if ray.Origin != camera.Origin {
				t.Errorf("Expected origin %v, got %v", camera.Origin, ray.Origin)
			}
			if !vecNear(ray.Direction, tt.expected, 1e-12) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCamera_OrientsTowardDirection(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
	}{
		{"along +X", core.NewVec3(1, 0, 0)},
		{"along -Z", core.NewVec3(0, 0, -1)},
		{"diagonal", core.NewVec3(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(core.NewVec3(0, 0, 0), tt.direction)
			ray := camera.PrimaryRay(0, 0)
			if !vecNear(ray.Direction, tt.direction.Normalize(), 1e-9) {
				t.Errorf("Expected center ray %v, got %v", tt.direction.Normalize(), ray.Direction)
			}
		})
	}
}

func TestCamera_LiteralDefaults(t *testing.T) {
	camera := &Camera{Origin: core.NewVec3(0, 0, 0)}
	ray := camera.PrimaryRay(500, 0)
	if !vecNear(ray.Direction, core.NewVec3(1, 0, 1).Normalize(), 1e-12) {
		t.Errorf("Expected default projection, got %v", ray.Direction)
	}
}
