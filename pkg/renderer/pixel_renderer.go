package renderer

import (
	"context"
	"math/rand"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// PixelRenderer samples individual pixels. It holds only read-only state and
// is shared by all workers.
type PixelRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     RenderConfig
	metrics    *core.Metrics
}

// NewPixelRenderer creates a pixel renderer. metrics may be nil.
func NewPixelRenderer(sc *scene.Scene, integ integrator.Integrator, config RenderConfig, metrics *core.Metrics) *PixelRenderer {
	if metrics == nil {
		metrics = core.NewMetrics()
	}
	return &PixelRenderer{
		scene:      sc,
		integrator: integ,
		config:     config,
		metrics:    metrics,
	}
}

// PrimaryRay returns the camera ray through pixel (x, y). Pixel rows grow
// downward on screen and upward in the world.
func (pr *PixelRenderer) PrimaryRay(x, y int) core.Ray {
	px := float64(x - pr.config.Width/2)
	py := float64(pr.config.Height/2 - y)
	return pr.scene.Camera.PrimaryRay(px, py)
}

// RenderPixel traces SampleCount paths through pixel (x, y) using random.
// At least one sample is always taken; after that, cancellation of ctx or
// an exhausted PixelTimeout stops sampling and marks the result Partial.
func (pr *PixelRenderer) RenderPixel(ctx context.Context, x, y int, random *rand.Rand) PixelSample {
	ps := PixelSample{X: x, Y: y}
	ray := pr.PrimaryRay(x, y)

	var deadline time.Time
	if pr.config.PixelTimeout > 0 {
		deadline = time.Now().Add(pr.config.PixelTimeout)
	}

	for ps.SampleCount == 0 || ps.SampleCount < pr.config.SampleCount {
		if ps.SampleCount > 0 && shouldStopSampling(ctx, deadline) {
			ps.Partial = true
			break
		}
		ps.AddSample(pr.integrator.RayColor(ray, pr.scene, random, 0))
	}

	pr.metrics.AddSamples(ps.SampleCount)
	pr.metrics.CountPixel(ps.Partial)
	return ps
}

func shouldStopSampling(ctx context.Context, deadline time.Time) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return !deadline.IsZero() && time.Now().After(deadline)
}
