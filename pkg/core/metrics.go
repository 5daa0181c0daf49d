package core

import "sync/atomic"

// Metrics holds per-render throughput counters shared by all workers.
// The counters are informational and never feed back into rendering.
type Metrics struct {
	rays          atomic.Int64
	samples       atomic.Int64
	pixels        atomic.Int64
	partialPixels atomic.Int64
}

// NewMetrics creates a zeroed metrics context
func NewMetrics() *Metrics {
	return &Metrics{}
}

// CountRay implements RayCounter
func (m *Metrics) CountRay() {
	m.rays.Add(1)
}

// AddSamples records n completed path samples
func (m *Metrics) AddSamples(n int) {
	m.samples.Add(int64(n))
}

// CountPixel records a finished pixel; partial pixels stopped early
func (m *Metrics) CountPixel(partial bool) {
	m.pixels.Add(1)
	if partial {
		m.partialPixels.Add(1)
	}
}

// Snapshot is a point-in-time copy of Metrics
type Snapshot struct {
	Rays          int64
	Samples       int64
	Pixels        int64
	PartialPixels int64
}

// Snapshot reads all counters
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Rays:          m.rays.Load(),
		Samples:       m.samples.Load(),
		Pixels:        m.pixels.Load(),
		PartialPixels: m.partialPixels.Load(),
	}
}
