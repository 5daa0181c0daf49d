package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Renderer renders frames of a read-only scene
type Renderer struct {
	scene      *scene.Scene
	config     RenderConfig
	logger     core.Logger
	integrator integrator.Integrator // Uncounted, for RenderPixel
}

// NewRenderer validates the scene and configuration and creates a renderer.
// logger may be nil.
func NewRenderer(sc *scene.Scene, config RenderConfig, logger core.Logger) (*Renderer, error) {
	if sc == nil {
		return nil, fmt.Errorf("scene is nil")
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render config: %w", err)
	}
	integ, err := integrator.New(config.Strategy, config.IntegratorConfig(), nil)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Renderer{scene: sc, config: config, logger: logger, integrator: integ}, nil
}

// Config returns the render configuration
func (r *Renderer) Config() RenderConfig {
	return r.config
}

// RenderPixel renders a single pixel with sampleCount samples and returns
// its display color. sampleCount below 1 takes one sample. Apart from
// consuming random it has no side effects.
func (r *Renderer) RenderPixel(x, y, sampleCount int, random *rand.Rand) core.Vec3 {
	config := r.config
	config.SampleCount = max(sampleCount, 1)
	config.PixelTimeout = 0

	sample := NewPixelRenderer(r.scene, r.integrator, config, nil).RenderPixel(context.Background(), x, y, random)
	return sample.Color(config.BrightnessScale)
}

// RenderFrame starts rendering every pixel of the image in parallel and
// returns immediately. The caller drains the returned Frame; pixels arrive
// in completion order.
func (r *Renderer) RenderFrame(ctx context.Context) *Frame {
	ctx, cancel := context.WithCancel(ctx)

	metrics := core.NewMetrics()
	// Strategy and config were validated by NewRenderer
	integ, err := integrator.New(r.config.Strategy, r.config.IntegratorConfig(), metrics)
	if err != nil {
		panic(err)
	}
	pixels := NewPixelRenderer(r.scene, integ, r.config, metrics)
	pool := NewWorkerPool(pixels, r.config.NumWorkers, r.config.QueueSize)

	frame := &Frame{
		ID:         uuid.New(),
		Width:      r.config.Width,
		Height:     r.config.Height,
		brightness: r.config.BrightnessScale,
		results:    pool.Results(),
		done:       make(chan struct{}),
		cancel:     cancel,
	}

	r.logger.Printf("Frame %s: %dx%d, %d samples per pixel, %s integrator, %d workers\n",
		frame.ID, r.config.Width, r.config.Height, r.config.SampleCount, r.strategyName(), pool.GetNumWorkers())

	start := time.Now()
	pool.Start(ctx)

	go func() {
		defer cancel()
		r.submitPixels(ctx, pool)
		pool.Close()

		cancelled := ctx.Err() != nil
		frame.finish(newRenderStats(frame.ID, r.config.Width*r.config.Height, pool.GetNumWorkers(),
			metrics.Snapshot(), time.Since(start), cancelled))

		stats := frame.stats
		if cancelled {
			r.logger.Printf("Frame %s: cancelled after %d/%d pixels\n", stats.RenderID, stats.Pixels, stats.TotalPixels)
		} else {
			r.logger.Printf("Frame %s: %d pixels in %v (%d partial, %d rays, %.2f Mrays/s)\n",
				stats.RenderID, stats.Pixels, stats.Duration, stats.PartialPixels, stats.RaysTraced, stats.RaysPerSecond()/1e6)
		}
	}()

	return frame
}

// submitPixels queues one task per pixel in row-major order
func (r *Renderer) submitPixels(ctx context.Context, pool *WorkerPool) {
	taskID := 0
	for y := 0; y < r.config.Height; y++ {
		for x := 0; x < r.config.Width; x++ {
			task := PixelTask{
				X:      x,
				Y:      y,
				TaskID: taskID,
				Seed:   pixelSeed(r.config.Seed, taskID),
			}
			if err := pool.Submit(ctx, task); err != nil {
				return
			}
			taskID++
		}
	}
}

func (r *Renderer) strategyName() integrator.Strategy {
	if r.config.Strategy == "" {
		return integrator.StrategyPathTracing
	}
	return r.config.Strategy
}

// pixelSeed derives a task seed. A zero base seed gives unseeded,
// non-reproducible generators.
func pixelSeed(base int64, index int) int64 {
	if base == 0 {
		return rand.Int63()
	}
	// splitmix64 finalizer spreads neighbouring indices apart
	z := uint64(base) + uint64(index+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
