package core

import (
	"math"
	"math/rand"
)

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(random *rand.Rand) Vec3 {
	z := 1.0 - 2.0*random.Float64() // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * random.Float64()
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SampleUniformHemisphere returns a unit direction drawn uniformly from the
// hemisphere around normal
func SampleUniformHemisphere(normal Vec3, random *rand.Rand) Vec3 {
	direction := SampleOnUnitSphere(random)
	if direction.Dot(normal) < 0 {
		return direction.Negate()
	}
	return direction
}
