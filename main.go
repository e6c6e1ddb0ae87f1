package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-mirror-raytracer/pkg/config"
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/integrator"
	"github.com/df07/go-mirror-raytracer/pkg/publish"
	"github.com/df07/go-mirror-raytracer/pkg/renderer"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene id ('default', 'default-shifted', 'facing-mirrors'), json:<name> or a .json path")
	maxDepth := flag.Int("depth", cfg.MaxRayDepth, "Cast invocations allowed per primary ray")
	workers := flag.Int("workers", cfg.NumWorkers, "Number of parallel workers (0 = auto-detect CPU count)")
	scale := flag.Int("scale", cfg.OutputScale, "Integer upscale factor for the saved image")
	upload := flag.Bool("upload", false, "Upload the render to the configured S3 bucket")
	hint := flag.Bool("hint", false, "Draw the start-up hint text over the image")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	cfg.MaxRayDepth = *maxDepth
	cfg.NumWorkers = *workers
	cfg.OutputScale = *scale

	if err := run(cfg, *sceneType, *upload, *hint); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Mirror Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-16s - %s\n", info.ID, info.Description)
	}
	if files, err := scene.ListSceneFiles(); err == nil {
		for _, info := range files {
			fmt.Printf("  %-16s - %s\n", info.ID, info.Description)
		}
	}
	fmt.Println()
	fmt.Println("Settings can also come from RAYTRACER_* environment variables or a .env file.")
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

// createScene builds the scene named by sceneType. Paths to .json files are
// accepted here in addition to scene ids.
func createScene(sceneType string, floorY float64) (*scene.Scene, error) {
	if strings.HasSuffix(sceneType, ".json") {
		return scene.CreateFromPath(sceneType, floorY)
	}
	return scene.Create(sceneType, floorY)
}

// sceneDirName returns the output directory name for a scene id
func sceneDirName(sceneType string) string {
	name := strings.TrimPrefix(sceneType, "json:")
	if strings.HasSuffix(name, ".json") {
		name = strings.TrimSuffix(filepath.Base(name), ".json")
	}
	return name
}

// outputFilename returns output/<scene>/render_<timestamp>.png
func outputFilename(outputDir, sceneType string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join(outputDir, sceneDirName(sceneType), fmt.Sprintf("render_%s.png", timestamp))
}

func run(cfg config.Config, sceneType string, upload, hint bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := renderer.NewDefaultLogger()
	logger.Printf("Starting Mirror Raytracer...\n")

	selectedScene, err := createScene(sceneType, cfg.FloorY)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}
	logger.Printf("Using scene %s (%d spheres)\n", sceneType, selectedScene.GetObjectCount())

	mirror := integrator.NewMirrorIntegrator(integrator.Config{MaxDepth: cfg.MaxRayDepth})
	raytracer := renderer.NewParallelRaytracer(selectedScene, mirror, cfg.CanvasWidth, cfg.CanvasHeight,
		renderer.ParallelConfig{TileSize: cfg.TileSize, NumWorkers: cfg.NumWorkers}, logger)

	viewport := renderer.CenteredViewport(cfg.SceneWidth, cfg.SceneHeight)
	fb, stats, err := raytracer.ComputeScene(context.Background(), viewport)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	img := finishImage(fb, cfg.OutputScale, hint)
	logger.Printf("Average luminance: %.3f (%d of %d pixels empty)\n",
		renderer.CalculateAverageLuminance(img), stats.EmptyPixels, stats.TotalPixels)

	filename := outputFilename(cfg.OutputDir, sceneType, time.Now())
	if err := renderer.SavePNG(img, filename); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)

	if upload {
		return publishImage(cfg, sceneDirName(sceneType), img, logger)
	}
	return nil
}

// finishImage converts the frame buffer for display
func finishImage(fb *renderer.FrameBuffer, scale int, hint bool) image.Image {
	var img image.Image = fb.Image()
	if hint {
		img = renderer.DrawOverlay(img, renderer.HintLines)
	}
	return renderer.Upscale(img, scale)
}

func publishImage(cfg config.Config, sceneName string, img image.Image, logger core.Logger) error {
	publisher, err := publish.NewS3PublisherFromConfig(cfg, logger)
	if err != nil {
		return err
	}
	key, err := publisher.PublishImage(context.Background(), sceneName, img)
	if err != nil {
		return err
	}
	logger.Printf("Render published as %s\n", key)
	return nil
}
