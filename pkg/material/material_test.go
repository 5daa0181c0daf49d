package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestMaterial_BuildersDoNotAlias(t *testing.T) {
	base := White()
	light := base.WithEmission(core.NewVec3(255, 255, 255))
	mirror := base.WithReflectivity(0.5)

	if base.IsEmissive() || base.Reflectivity != nil {
		t.Error("Builders must not modify the receiver")
	}
	if !light.IsEmissive() {
		t.Error("Expected emissive material")
	}
	if mirror.IsEmissive() || *mirror.Reflectivity != 0.5 {
		t.Errorf("Unexpected mirror material %+v", mirror)
	}
}

func TestMaterial_Albedo(t *testing.T) {
	albedo := Pink().Albedo()
	expected := core.NewVec3(1, 192.0/255.0, 203.0/255.0)
	if albedo.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, albedo)
	}
}

func TestMaterial_Validate(t *testing.T) {
	tests := []struct {
		name        string
		material    Material
		expectError bool
	}{
		{"plain", Red(), false},
		{"emissive", NewEmissive(core.NewVec3(1, 1, 1), core.NewVec3(255, 255, 255)), false},
		{"reflective", Blue().WithReflectivity(1.0), false},
		{"negative color", New(core.NewVec3(-1, 0, 0)), true},
		{"reflectivity too large", Green().WithReflectivity(1.5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.material.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected error, got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestPreset(t *testing.T) {
	for _, name := range []string{"red", "green", "blue", "black", "white", "pink"} {
		if _, ok := Preset(name); !ok {
			t.Errorf("Expected preset %q", name)
		}
	}
	if _, ok := Preset("chartreuse"); ok {
		t.Error("Expected unknown preset to be rejected")
	}
}
