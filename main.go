package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	defaults := renderer.DefaultRenderConfig()

	// Parse command line flags
	sceneType := flag.String("scene", "room", "Scene: 'room' or path to a JSON scene descriptor")
	width := flag.Int("width", defaults.Width, "Image width in pixels")
	height := flag.Int("height", defaults.Height, "Image height in pixels")
	samples := flag.Int("samples", defaults.SampleCount, "Samples per pixel")
	depth := flag.Int("depth", defaults.MaxDepth, "Maximum bounce depth")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = all logical CPUs)")
	seed := flag.Int64("seed", 0, "Seed for a reproducible render (0 = random)")
	strategy := flag.String("strategy", string(integrator.StrategyPathTracing), "Illumination model: 'path' or 'whitted'")
	timeout := flag.Duration("timeout", 0, "Per-pixel time budget, e.g. 50ms (0 = unbounded)")
	output := flag.String("output", "", "Output PNG file (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  room        - Closed room with four spheres and a spherical light")
		fmt.Println("  <file.json> - Scene descriptor file")
		return
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	config := defaults
	config.Width = *width
	config.Height = *height
	config.SampleCount = *samples
	config.MaxDepth = *depth
	config.NumWorkers = *workers
	config.Seed = *seed
	config.Strategy = integrator.Strategy(*strategy)
	config.PixelTimeout = *timeout

	logger := core.NewDefaultLogger()
	r, err := renderer.NewRenderer(selectedScene, config, logger)
	if err != nil {
		fmt.Printf("Error creating renderer: %v\n", err)
		os.Exit(1)
	}

	filename := *output
	if filename == "" {
		filename = defaultOutputPath(*sceneType, time.Now())
	}

	// Ctrl-C stops the frame; whatever finished is still saved
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Rendering %d primitives at %dx%d...\n", selectedScene.GetPrimitiveCount(), config.Width, config.Height)
	img, stats := renderImage(ctx, r)

	fmt.Printf("Render completed in %v\n", stats.Duration)
	fmt.Printf("Samples per pixel: %.1f (%d partial pixels)\n", stats.AverageSamples, stats.PartialPixels)
	if stats.Cancelled {
		fmt.Printf("Render cancelled: %d of %d pixels finished\n", stats.Pixels, stats.TotalPixels)
	}

	if err := savePNG(filename, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

// createScene returns the built-in room or loads a scene descriptor
func createScene(sceneType string) (*scene.Scene, error) {
	switch {
	case sceneType == "room":
		return scene.NewRoomScene(), nil
	case strings.HasSuffix(sceneType, ".json"):
		return scene.LoadFile(sceneType)
	default:
		return nil, fmt.Errorf("unknown scene %q", sceneType)
	}
}

// defaultOutputPath names the output file after the scene and start time
func defaultOutputPath(sceneType string, now time.Time) string {
	name := sceneType
	if strings.HasSuffix(name, ".json") {
		name = strings.TrimSuffix(filepath.Base(name), ".json")
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", timestamp))
}

// renderImage drains a frame into an image. Unfinished pixels stay black.
func renderImage(ctx context.Context, r *renderer.Renderer) (*image.RGBA, renderer.RenderStats) {
	frame := r.RenderFrame(ctx)
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			img.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}

	stats := frame.Collect(func(p renderer.FramePixel) {
		img.SetRGBA(p.X, p.Y, color.RGBA{
			R: uint8(p.Color.X),
			G: uint8(p.Color.Y),
			B: uint8(p.Color.Z),
			A: 255,
		})
	})
	return img, stats
}

func savePNG(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return err
	}
	return file.Close()
}
