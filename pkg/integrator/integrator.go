package integrator

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms.
// Implementations are shared across workers and must not hold per-ray state;
// all randomness comes from the caller's generator.
type Integrator interface {
	// RayColor estimates the radiance arriving along ray. depth counts the
	// bounces taken so far, starting at 0 for primary rays.
	RayColor(ray core.Ray, sc *scene.Scene, random *rand.Rand, depth int) core.Vec3
}

// Strategy names an illumination model
type Strategy string

const (
	StrategyPathTracing Strategy = "path"
	StrategyWhitted     Strategy = "whitted"
)

// Config holds the light transport constants shared by both models
type Config struct {
	MaxDepth          int       // Bounces allowed before a path is absorbed
	BounceAttenuation float64   // Energy kept per diffuse bounce
	BackgroundColor   core.Vec3 // Returned when a ray escapes the scene
	AbsorbedColor     core.Vec3 // Returned when MaxDepth is exceeded
	SurfaceOffset     float64   // Distance secondary rays start above the surface
}

// DefaultConfig returns the reference constants
func DefaultConfig() Config {
	return Config{
		MaxDepth:          5,
		BounceAttenuation: 0.8,
		BackgroundColor:   core.NewVec3(70, 70, 70),
		AbsorbedColor:     core.NewVec3(50, 50, 50),
		SurfaceOffset:     0.5,
	}
}

// Validate checks the config for values that would break termination or energy bounds
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth %d must not be negative", c.MaxDepth)
	}
	if c.BounceAttenuation < 0 || c.BounceAttenuation > 1 {
		return fmt.Errorf("bounce attenuation %g must be in [0,1]", c.BounceAttenuation)
	}
	if c.SurfaceOffset < 0 {
		return fmt.Errorf("surface offset %g must not be negative", c.SurfaceOffset)
	}
	return nil
}

// New creates the integrator for a strategy. counter may be nil.
func New(strategy Strategy, config Config, counter core.RayCounter) (Integrator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	switch strategy {
	case StrategyPathTracing, "":
		return NewPathTracingIntegrator(config, counter), nil
	case StrategyWhitted:
		return NewWhittedIntegrator(config, counter), nil
	default:
		return nil, fmt.Errorf("unknown integrator strategy %q", strategy)
	}
}

// facingNormal returns the normal on the side the ray arrived from. Bounce
// directions and ray offsets use it instead of the winding normal, so a
// surface shades the same from either side regardless of vertex order.
func facingNormal(ray core.Ray, normal core.Vec3) core.Vec3 {
	if ray.Direction.Dot(normal) > 0 {
		return normal.Negate()
	}
	return normal
}

type nopCounter struct{}

func (nopCounter) CountRay() {}

func counterOrNop(counter core.RayCounter) core.RayCounter {
	if counter == nil {
		return nopCounter{}
	}
	return counter
}
