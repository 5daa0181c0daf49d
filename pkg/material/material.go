package material

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Material describes how a surface responds to light. It is a small value
// type and is copied into every intersection.
type Material struct {
	BaseColor    core.Vec3  // Reflectance in 0-255 channel units
	Emission     *core.Vec3 // Emitted radiance; nil for non-emitters
	Reflectivity *float64   // Mirror fraction in [0,1] for the Whitted model; nil for none
}

// New creates a diffuse material with the given base color
func New(baseColor core.Vec3) Material {
	return Material{BaseColor: baseColor}
}

// NewEmissive creates a light-source material
func NewEmissive(baseColor, emission core.Vec3) Material {
	return New(baseColor).WithEmission(emission)
}

// WithEmission returns a copy of m that emits the given color
func (m Material) WithEmission(emission core.Vec3) Material {
	m.Emission = &emission
	return m
}

// WithReflectivity returns a copy of m that mirrors the given fraction of light
func (m Material) WithReflectivity(reflectivity float64) Material {
	m.Reflectivity = &reflectivity
	return m
}

// IsEmissive reports whether the material is a light source
func (m Material) IsEmissive() bool {
	return m.Emission != nil
}

// Albedo returns the base color as a [0,1] reflectance
func (m Material) Albedo() core.Vec3 {
	return m.BaseColor.Multiply(1.0 / 255.0)
}

// Validate checks channel and reflectivity ranges
func (m Material) Validate() error {
	if !m.BaseColor.IsFinite() || m.BaseColor.X < 0 || m.BaseColor.Y < 0 || m.BaseColor.Z < 0 {
		return fmt.Errorf("base color %v must be finite and non-negative", m.BaseColor)
	}
	if m.Emission != nil && !m.Emission.IsFinite() {
		return fmt.Errorf("emission %v must be finite", *m.Emission)
	}
	if m.Reflectivity != nil && (*m.Reflectivity < 0 || *m.Reflectivity > 1) {
		return fmt.Errorf("reflectivity %g must be in [0,1]", *m.Reflectivity)
	}
	return nil
}

// Preset diffuse materials
func Red() Material   { return New(core.NewVec3(255, 0, 0)) }
func Green() Material { return New(core.NewVec3(0, 255, 0)) }
func Blue() Material  { return New(core.NewVec3(0, 0, 255)) }
func Black() Material { return New(core.NewVec3(0, 0, 0)) }
func White() Material { return New(core.NewVec3(255, 255, 255)) }
func Pink() Material  { return New(core.NewVec3(255, 192, 203)) }

var presets = map[string]func() Material{
	"red":   Red,
	"green": Green,
	"blue":  Blue,
	"black": Black,
	"white": White,
	"pink":  Pink,
}

// Preset looks up a preset material by name
func Preset(name string) (Material, bool) {
	fn, ok := presets[name]
	if !ok {
		return Material{}, false
	}
	return fn(), true
}
