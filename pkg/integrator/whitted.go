package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

const (
	whittedMinCosine    = 0.2 // Floor on the light cosine so unlit sides stay visible
	whittedShadowFactor = 0.8 // Applied when the shadow ray is blocked
)

// WhittedIntegrator implements the legacy deterministic model: mirror
// reflection for reflective materials plus a single shadow ray toward the
// light's center. It never samples randomly. Unlike the classic form of
// this model, a miss returns BackgroundColor rather than black and
// recursion is capped by MaxDepth, matching the path tracer.
type WhittedIntegrator struct {
	config  Config
	counter core.RayCounter
}

// NewWhittedIntegrator creates a new Whitted-style integrator
func NewWhittedIntegrator(config Config, counter core.RayCounter) *WhittedIntegrator {
	return &WhittedIntegrator{
		config:  config,
		counter: counterOrNop(counter),
	}
}

// RayColor computes the color for a single ray. random is unused.
func (w *WhittedIntegrator) RayColor(ray core.Ray, sc *scene.Scene, random *rand.Rand, depth int) core.Vec3 {
	if depth > w.config.MaxDepth {
		return w.config.AbsorbedColor
	}

	w.counter.CountRay()
	hit, isHit := sc.FirstIntersection(ray)
	if !isHit {
		return w.config.BackgroundColor
	}

	if hit.Material.Emission != nil {
		return *hit.Material.Emission
	}

	normal := facingNormal(ray, hit.Normal)
	origin := hit.Position.Add(normal.Multiply(w.config.SurfaceOffset))
	color := hit.Material.BaseColor

	if k := hit.Material.Reflectivity; k != nil {
		reflected := core.NewRay(origin, ray.Direction.Reflect(normal))
		reflectedColor := w.RayColor(reflected, sc, random, depth+1)
		color = reflectedColor.Multiply(*k).Add(color.Multiply(1 - *k))
	}

	return color.Multiply(w.directLight(sc, hit.Position, origin, normal))
}

// directLight returns the local shading factor from one shadow ray
func (w *WhittedIntegrator) directLight(sc *scene.Scene, position, origin, normal core.Vec3) float64 {
	toLight := sc.LightPosition().Subtract(position).Normalize()
	factor := math.Max(whittedMinCosine, toLight.Dot(normal))

	w.counter.CountRay()
	if !sc.HitsLight(core.NewRay(origin, toLight)) {
		factor *= whittedShadowFactor
	}
	return factor
}
