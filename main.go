package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"github.com/schollz/progressbar/v3"

	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "checker-room", "Built-in scene name (see -list)")
	sceneFile := flag.String("file", "", "Render a JSON scene description instead of a built-in scene")
	width := flag.Int("width", 0, "Image width and height in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per logical CPU)")
	seed := flag.Int64("seed", renderer.DefaultSeed, "Base random seed")
	out := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	list := flag.Bool("list", false, "List built-in scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Stochastic Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		return
	}

	if *list {
		printScenes()
		return
	}

	overrides := renderer.CameraConfig{Width: *width, SamplesPerPixel: *samples}
	selectedScene, err := createScene(*sceneType, *sceneFile, overrides)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Using %s scene (%d primitives)...\n", selectedScene.Name, selectedScene.GetPrimitiveCount())

	raytracer := renderer.NewRaytracer(
		selectedScene.World,
		selectedScene.Camera(),
		selectedScene.Ambient,
		renderer.RenderConfig{Workers: *workers, Seed: *seed},
		renderer.NewDefaultLogger(),
	)

	bar := progressbar.NewOptions(raytracer.Progress().Total(),
		progressbar.OptionSetDescription("Rendering"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	raytracer.Progress().OnUpdate = func(current, total int) {
		_ = bar.Set(current)
	}

	img, stats, err := raytracer.Render(context.Background())
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %d pixels with %d samples in %v\n", stats.TotalPixels, stats.TotalSamples, stats.Elapsed)

	filename := *out
	if filename == "" {
		filename = outputPath(selectedScene.Name, time.Now())
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	if err := gg.SavePNG(filename, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene loads the JSON scene file if one is given, otherwise the named built-in scene
func createScene(sceneType, sceneFile string, overrides renderer.CameraConfig) (*scene.Scene, error) {
	if sceneFile != "" {
		return scene.LoadFile(sceneFile, overrides)
	}
	return scene.Create(sceneType, overrides)
}

// outputPath returns output/<scene>/render_<timestamp>.png
func outputPath(sceneName string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.List() {
		fmt.Printf("  %-13s - %s\n", info.Name, info.Description)
	}
}
