package renderer

import (
	"context"

	"github.com/google/uuid"

	"github.com/df07/go-pathtracer/pkg/core"
)

// FramePixel is a finished pixel ready for display
type FramePixel struct {
	X, Y    int
	Color   core.Vec3 // Display color in 0-255 channel units
	Samples int
	Partial bool
}

// Frame is the asynchronous stream of pixels produced by RenderFrame.
// A single consumer should read it, through Results, Poll or Collect.
// Pixels arrive in completion order; PixelResult.TaskID gives the
// row-major submission order for callers that need to re-sequence.
type Frame struct {
	ID     uuid.UUID
	Width  int
	Height int

	brightness float64
	results    <-chan PixelResult
	done       chan struct{}
	cancel     context.CancelFunc
	stats      RenderStats
}

// Results returns the raw completion channel. It is closed once every
// worker has finished.
func (f *Frame) Results() <-chan PixelResult {
	return f.results
}

// Pixel converts a raw result into a display pixel
func (f *Frame) Pixel(result PixelResult) FramePixel {
	return FramePixel{
		X:       result.Sample.X,
		Y:       result.Sample.Y,
		Color:   result.Sample.Color(f.brightness),
		Samples: result.Sample.SampleCount,
		Partial: result.Sample.Partial,
	}
}

// Poll returns up to limit pixels that are already finished without
// blocking. limit <= 0 means no limit. The second value is false once the
// stream is exhausted.
func (f *Frame) Poll(limit int) ([]FramePixel, bool) {
	var pixels []FramePixel
	for limit <= 0 || len(pixels) < limit {
		select {
		case result, ok := <-f.results:
			if !ok {
				return pixels, false
			}
			pixels = append(pixels, f.Pixel(result))
		default:
			return pixels, true
		}
	}
	return pixels, true
}

// Collect blocks until the frame is finished, passing every pixel to fn,
// and returns the frame statistics
func (f *Frame) Collect(fn func(FramePixel)) RenderStats {
	for result := range f.results {
		if fn != nil {
			fn(f.Pixel(result))
		}
	}
	<-f.done
	return f.stats
}

// Wait discards the remaining pixels and returns the frame statistics
func (f *Frame) Wait() RenderStats {
	return f.Collect(nil)
}

// Cancel stops the frame. Queued pixels are skipped and in-flight pixels
// finish with a partial average; those are still delivered, so keep
// draining until the stream closes.
func (f *Frame) Cancel() {
	f.cancel()
}

// Done is closed once the frame is finished and Stats is final
func (f *Frame) Done() <-chan struct{} {
	return f.done
}

// Stats returns the frame statistics; only valid after Done is closed
func (f *Frame) Stats() RenderStats {
	<-f.done
	return f.stats
}

func (f *Frame) finish(stats RenderStats) {
	f.stats = stats
	close(f.done)
}
