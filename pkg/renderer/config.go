package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width  int // Image width in pixels
	Height int // Image height in pixels

	SampleCount       int                 // Paths traced per pixel
	MaxDepth          int                 // Maximum bounce depth
	BounceAttenuation float64             // Energy kept per diffuse bounce
	BrightnessScale   float64             // Multiplier applied to the pixel average
	BackgroundColor   core.Vec3           // Color of rays that leave the scene
	AbsorbedColor     core.Vec3           // Color of paths cut off by MaxDepth
	SurfaceOffset     float64             // Secondary ray start offset along the normal
	Strategy          integrator.Strategy // Illumination model

	NumWorkers   int           // Parallel workers (0 = logical CPU count)
	QueueSize    int           // Capacity of the task and result queues
	PixelTimeout time.Duration // Per-pixel time budget (0 = unbounded)
	Seed         int64         // Base seed for reproducible renders (0 = unseeded)
}

// DefaultRenderConfig returns the reference settings
func DefaultRenderConfig() RenderConfig {
	ic := integrator.DefaultConfig()
	return RenderConfig{
		Width:             500,
		Height:            500,
		SampleCount:       1024,
		MaxDepth:          ic.MaxDepth,
		BounceAttenuation: ic.BounceAttenuation,
		BrightnessScale:   10.0,
		BackgroundColor:   ic.BackgroundColor,
		AbsorbedColor:     ic.AbsorbedColor,
		SurfaceOffset:     ic.SurfaceOffset,
		Strategy:          integrator.StrategyPathTracing,
		NumWorkers:        0,
		QueueSize:         256,
	}
}

// IntegratorConfig extracts the light transport settings
func (c RenderConfig) IntegratorConfig() integrator.Config {
	return integrator.Config{
		MaxDepth:          c.MaxDepth,
		BounceAttenuation: c.BounceAttenuation,
		BackgroundColor:   c.BackgroundColor,
		AbsorbedColor:     c.AbsorbedColor,
		SurfaceOffset:     c.SurfaceOffset,
	}
}

// Validate reports the first invalid setting
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size %dx%d must be positive", c.Width, c.Height)
	}
	if c.SampleCount <= 0 {
		return fmt.Errorf("sample count %d must be positive", c.SampleCount)
	}
	if c.BrightnessScale < 0 {
		return fmt.Errorf("brightness scale %g must not be negative", c.BrightnessScale)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count %d must not be negative", c.NumWorkers)
	}
	if c.QueueSize < 0 {
		return fmt.Errorf("queue size %d must not be negative", c.QueueSize)
	}
	if c.PixelTimeout < 0 {
		return fmt.Errorf("pixel timeout %v must not be negative", c.PixelTimeout)
	}
	if err := c.IntegratorConfig().Validate(); err != nil {
		return fmt.Errorf("integrator: %w", err)
	}
	return nil
}
