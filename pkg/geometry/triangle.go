package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// triangleEpsilon is single-precision machine epsilon. Determinants and
// distances below it are treated as zero.
const triangleEpsilon = 1.1920929e-07

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   material.Material
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	return &Triangle{V0: v0, V1: v1, V2: v2, Material: mat}
}

// Intersect tests if a ray intersects with the triangle using the Möller-Trumbore algorithm.
// The reported normal is edge1 × edge2 and depends on winding only.
func (tr *Triangle) Intersect(ray core.Ray) (Intersection, bool) {
	edge1 := tr.V1.Subtract(tr.V0)
	edge2 := tr.V2.Subtract(tr.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in (or parallel to) the triangle plane
	if a > -triangleEpsilon && a < triangleEpsilon {
		return Intersection{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(tr.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return Intersection{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return Intersection{}, false
	}

	t := f * edge2.Dot(q)
	if t <= triangleEpsilon || t >= 1/triangleEpsilon {
		return Intersection{}, false
	}

	return NewIntersection(ray.At(t), edge1.Cross(edge2), t, tr.Material), true
}

// Centroid returns the average of the three vertices
func (tr *Triangle) Centroid() core.Vec3 {
	return tr.V0.Add(tr.V1).Add(tr.V2).Divide(3)
}

// Validate rejects collinear vertices
func (tr *Triangle) Validate() error {
	area := tr.V1.Subtract(tr.V0).Cross(tr.V2.Subtract(tr.V0)).Length()
	if area <= triangleEpsilon || math.IsNaN(area) || math.IsInf(area, 0) {
		return fmt.Errorf("triangle %v %v %v is degenerate", tr.V0, tr.V1, tr.V2)
	}
	return tr.Material.Validate()
}

// NewRectangle splits the parallelogram spanned by dir1 and dir2 at origin
// into two triangles sharing the same winding.
func NewRectangle(origin, dir1, dir2 core.Vec3, mat material.Material) []Shape {
	v1 := origin
	v2 := origin.Add(dir1)
	v3 := origin.Add(dir2)
	v4 := origin.Add(dir1).Add(dir2)

	return []Shape{
		NewTriangle(v1, v2, v3, mat),
		NewTriangle(v2, v4, v3, mat),
	}
}
