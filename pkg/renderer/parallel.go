package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/integrator"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ParallelConfig contains configuration for tile-parallel rendering
type ParallelConfig struct {
	TileSize   int // Size of each tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultParallelConfig returns sensible default values
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// ParallelRaytracer renders a frame by splitting it into tiles traced by a
// worker pool. The result is identical to Raytracer.ComputeScene.
type ParallelRaytracer struct {
	raytracer *Raytracer
	width     int
	height    int
	config    ParallelConfig
	tiles     []*Tile
	logger    core.Logger
}

// NewParallelRaytracer creates a new parallel raytracer
func NewParallelRaytracer(sc *scene.Scene, integratorInst integrator.Integrator, width, height int, config ParallelConfig, logger core.Logger) *ParallelRaytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultParallelConfig().TileSize
	}

	return &ParallelRaytracer{
		raytracer: NewRaytracer(sc, integratorInst, width, height),
		width:     width,
		height:    height,
		config:    config,
		tiles:     NewTileGrid(width, height, config.TileSize),
		logger:    logger,
	}
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	X, Y      int          // Top-left corner of the tile in image coordinates
	TileImage *image.NRGBA // Image data for just this tile, row 0 at the top

	// Progress information
	TileNumber int // Completed tiles so far (1-based)
	TotalTiles int // Total number of tiles in the frame
}

// FrameResult is a completed render
type FrameResult struct {
	Buffer *FrameBuffer
	Image  *image.NRGBA
	Stats  RenderStats
}

// RenderOptions configures rendering behavior
type RenderOptions struct {
	TileUpdates bool // Whether to generate tile completion events
}

// ComputeScene renders the viewport into a new frame buffer
func (pr *ParallelRaytracer) ComputeScene(ctx context.Context, viewport Viewport) (*FrameBuffer, RenderStats, error) {
	return pr.RenderFrame(ctx, viewport, nil)
}

// RenderFrame renders every tile of the viewport and calls tileCallback from
// the calling goroutine as tiles complete
func (pr *ParallelRaytracer) RenderFrame(ctx context.Context, viewport Viewport, tileCallback func(TileCompletionResult)) (*FrameBuffer, RenderStats, error) {
	startTime := time.Now()
	fb := NewFrameBuffer(pr.width, pr.height)
	camera := NewOrthographicCamera(viewport, pr.width, pr.height)

	workerPool := NewWorkerPool(pr.raytracer, len(pr.tiles), pr.config.NumWorkers)
	workerPool.Start(ctx)
	defer workerPool.Stop()

	pr.logger.Printf("Rendering %dx%d in %d tiles (using %d workers)...\n",
		pr.width, pr.height, len(pr.tiles), workerPool.GetNumWorkers())

	for taskID, tile := range pr.tiles {
		workerPool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: taskID,
			Camera: camera,
			Buffer: fb,
		})
	}

	var stats RenderStats
	for i := 0; i < len(pr.tiles); i++ {
		if err := ctx.Err(); err != nil {
			pr.logger.Printf("Rendering cancelled after %d of %d tiles\n", i, len(pr.tiles))
			return nil, RenderStats{}, err
		}

		result, ok := workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			return nil, RenderStats{}, result.Error
		}
		stats.Merge(result.Stats)

		// Dispatch tile callbacks single-threaded
		if tileCallback != nil {
			tile := pr.tiles[result.TaskID]
			rect := fb.ImageRect(tile.Bounds)
			tileCallback(TileCompletionResult{
				X:          rect.Min.X,
				Y:          rect.Min.Y,
				TileImage:  fb.Region(tile.Bounds),
				TileNumber: i + 1,
				TotalTiles: len(pr.tiles),
			})
		}
	}

	stats.Duration = time.Since(startTime)
	pr.logger.Printf("Render completed in %v (%.1f%% coverage)\n", stats.Duration, 100*stats.Coverage())

	return fb, stats, nil
}

// Render renders the viewport in the background and reports through channels.
// The caller should read from these channels in separate goroutines.
// If options.TileUpdates is false, the tile channel is closed immediately.
func (pr *ParallelRaytracer) Render(ctx context.Context, viewport Viewport, options RenderOptions) (<-chan FrameResult, <-chan TileCompletionResult, <-chan error) {
	frameChan := make(chan FrameResult, 1)
	tileChan := make(chan TileCompletionResult, len(pr.tiles))
	errChan := make(chan error, 1)

	if !options.TileUpdates {
		close(tileChan)
	}

	go func() {
		defer close(frameChan)
		if options.TileUpdates {
			defer close(tileChan)
		}
		defer close(errChan)

		var tileCallback func(TileCompletionResult)
		if options.TileUpdates {
			tileCallback = func(result TileCompletionResult) {
				select {
				case tileChan <- result:
				case <-ctx.Done():
				}
			}
		}

		fb, stats, err := pr.RenderFrame(ctx, viewport, tileCallback)
		if err != nil {
			errChan <- err
			return
		}

		select {
		case frameChan <- FrameResult{Buffer: fb, Image: fb.Image(), Stats: stats}:
		case <-ctx.Done():
		}
	}()

	return frameChan, tileChan, errChan
}

// GetTileCount returns the number of tiles per frame
func (pr *ParallelRaytracer) GetTileCount() int {
	return len(pr.tiles)
}
