package integrator

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// PathTracingIntegrator implements Monte-Carlo path tracing with uniform
// hemisphere sampling. Emitters end a path; every other surface scatters
// exactly one random bounce.
type PathTracingIntegrator struct {
	config  Config
	counter core.RayCounter
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config, counter core.RayCounter) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config:  config,
		counter: counterOrNop(counter),
	}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sc *scene.Scene, random *rand.Rand, depth int) core.Vec3 {
	// Path is too long: treat as absorbed regardless of the geometry
	if depth > pt.config.MaxDepth {
		return pt.config.AbsorbedColor
	}

	pt.counter.CountRay()
	hit, isHit := sc.FirstIntersection(ray)
	if !isHit {
		return pt.config.BackgroundColor
	}

	if hit.Material.Emission != nil {
		return *hit.Material.Emission
	}

	normal := facingNormal(ray, hit.Normal)
	bounce := core.NewRay(
		hit.Position.Add(normal.Multiply(pt.config.SurfaceOffset)),
		core.SampleUniformHemisphere(normal, random),
	)

	incoming := pt.RayColor(bounce, sc, random, depth+1)
	return incoming.MultiplyVec(hit.Material.Albedo()).Multiply(pt.config.BounceAttenuation)
}
