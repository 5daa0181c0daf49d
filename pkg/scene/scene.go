package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering. It is built once and
// must not be modified while a render is reading it.
type Scene struct {
	Camera  *geometry.Camera
	Objects []geometry.Shape // Objects other than the distinguished light, in insertion order
	Light   geometry.Shape   // Distinguished emitter, also intersectable
}

// New creates an empty scene with a camera and a light
func New(camera *geometry.Camera, light geometry.Shape) *Scene {
	return &Scene{
		Camera:  camera,
		Objects: make([]geometry.Shape, 0),
		Light:   light,
	}
}

// Add appends objects to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Objects = append(s.Objects, shapes...)
}

// FirstIntersection returns the closest hit among all objects and the light.
// A scene with no geometry never hits.
func (s *Scene) FirstIntersection(ray core.Ray) (geometry.Intersection, bool) {
	var closest geometry.Intersection
	hitAnything := false

	for _, shape := range s.Objects {
		if hit, isHit := shape.Intersect(ray); isHit {
			if !hitAnything || hit.Distance < closest.Distance {
				closest = hit
				hitAnything = true
			}
		}
	}

	if s.Light != nil {
		if hit, isHit := s.Light.Intersect(ray); isHit {
			if !hitAnything || hit.Distance < closest.Distance {
				closest = hit
				hitAnything = true
			}
		}
	}

	return closest, hitAnything
}

// HitsLight reports whether the ray reaches the light before any other
// object. Used by the shadow test of the Whitted model.
func (s *Scene) HitsLight(ray core.Ray) bool {
	if s.Light == nil {
		return false
	}
	lightHit, isHit := s.Light.Intersect(ray)
	if !isHit {
		return false
	}

	for _, shape := range s.Objects {
		if hit, isHit := shape.Intersect(ray); isHit && hit.Distance <= lightHit.Distance {
			return false
		}
	}
	return true
}

// LightPosition returns the centroid of the light, or the origin if the
// scene has no light
func (s *Scene) LightPosition() core.Vec3 {
	if s.Light == nil {
		return core.Vec3{}
	}
	return s.Light.Centroid()
}

// GetPrimitiveCount returns the number of intersectable shapes, light included
func (s *Scene) GetPrimitiveCount() int {
	count := len(s.Objects)
	if s.Light != nil {
		count++
	}
	return count
}

// Validate checks that the scene is renderable
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("scene has no camera")
	}
	if s.Light != nil {
		if err := validateShape(s.Light); err != nil {
			return fmt.Errorf("light: %w", err)
		}
		if !lightIsEmissive(s.Light) {
			return fmt.Errorf("light must have an emissive material")
		}
	}
	for i, shape := range s.Objects {
		if err := validateShape(shape); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	return nil
}

func validateShape(shape geometry.Shape) error {
	if validator, ok := shape.(geometry.Validator); ok {
		return validator.Validate()
	}
	return nil
}

func lightIsEmissive(light geometry.Shape) bool {
	switch l := light.(type) {
	case *geometry.Sphere:
		return l.Material.IsEmissive()
	case *geometry.Triangle:
		return l.Material.IsEmissive()
	}
	// Unknown shape kinds are trusted
	return true
}
