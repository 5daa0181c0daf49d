package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Intersection contains information about a ray-surface hit. Construct it
// with NewIntersection so the normal is always unit length.
type Intersection struct {
	Distance float64           // Parameter t along the ray
	Position core.Vec3         // Point of intersection
	Normal   core.Vec3         // Unit surface normal
	Material material.Material // Copy of the surface material
}

// NewIntersection creates an intersection, normalizing the normal
func NewIntersection(position, normal core.Vec3, distance float64, mat material.Material) Intersection {
	return Intersection{
		Distance: distance,
		Position: position,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Intersect(ray core.Ray) (Intersection, bool)
	Centroid() core.Vec3
}

// Validator is implemented by shapes that can check their own invariants
type Validator interface {
	Validate() error
}
