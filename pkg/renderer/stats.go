package renderer

import (
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about a finished frame
type RenderStats struct {
	RenderID       uuid.UUID     // Identifies the frame in logs
	TotalPixels    int           // Pixels in the frame
	Pixels         int           // Pixels actually rendered
	PartialPixels  int           // Pixels stopped before SampleCount
	TotalSamples   int64         // Paths traced
	AverageSamples float64       // Average samples per rendered pixel
	RaysTraced     int64         // Rays cast by the integrator
	Workers        int           // Worker goroutines used
	Duration       time.Duration // Wall-clock time of the frame
	Cancelled      bool          // Whether the frame was cancelled before completion
}

// newRenderStats builds stats from the frame's metrics
func newRenderStats(id uuid.UUID, totalPixels, workers int, snap core.Snapshot, duration time.Duration, cancelled bool) RenderStats {
	stats := RenderStats{
		RenderID:      id,
		TotalPixels:   totalPixels,
		Pixels:        int(snap.Pixels),
		PartialPixels: int(snap.PartialPixels),
		TotalSamples:  snap.Samples,
		RaysTraced:    snap.Rays,
		Workers:       workers,
		Duration:      duration,
		Cancelled:     cancelled,
	}
	if snap.Pixels > 0 {
		stats.AverageSamples = float64(snap.Samples) / float64(snap.Pixels)
	}
	return stats
}

// RaysPerSecond returns the integrator throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.RaysTraced) / s.Duration.Seconds()
}

// PixelSample accumulates the samples of a single pixel
type PixelSample struct {
	X, Y        int
	ColorAccum  core.Vec3 // Sum of all sample colors
	SampleCount int       // Number of samples taken
	Partial     bool      // Stopped early by cancellation or timeout
}

// AddSample adds a new color sample to the pixel
func (ps *PixelSample) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// Average returns the mean sample color
func (ps *PixelSample) Average() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Color returns the display color: the average scaled by brightness and
// clamped to the 0-255 channel range
func (ps *PixelSample) Color(brightness float64) core.Vec3 {
	return ps.Average().Multiply(brightness).Clamp(0, 255)
}
