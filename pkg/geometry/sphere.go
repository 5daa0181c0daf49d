package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect tests the ray against the sphere. Only the nearer root is
// considered; hits behind the ray origin are misses.
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Intersection{}, false
	}

	t := (-b - math.Sqrt(discriminant)) / (2.0 * a)
	if t < 0 {
		return Intersection{}, false
	}

	hit := ray.At(t)
	return NewIntersection(hit, hit.Subtract(s.Center), t, s.Material), true
}

// Centroid returns the sphere center
func (s *Sphere) Centroid() core.Vec3 {
	return s.Center
}

// Validate checks that the radius is positive and finite
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("sphere radius %g must be positive", s.Radius)
	}
	if !s.Center.IsFinite() {
		return fmt.Errorf("sphere center %v must be finite", s.Center)
	}
	return s.Material.Validate()
}
