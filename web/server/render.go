package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/integrator"
	"github.com/df07/go-mirror-raytracer/pkg/renderer"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// TileUpdate represents a single tile update sent via SSE
type TileUpdate struct {
	X          int    `json:"x"`          // Left edge of the tile in image pixels
	Y          int    `json:"y"`          // Top edge of the tile in image pixels
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // Completed tiles so far (1-based)
	TotalTiles int    `json:"totalTiles"` // Total number of tiles in the image
}

// FrameUpdate summarises a finished frame
type FrameUpdate struct {
	Event       string  `json:"event"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	ElapsedMs   int64   `json:"elapsedMs"`
	TotalPixels int     `json:"totalPixels"`
	EmptyPixels int     `json:"emptyPixels"`
	Tiles       int     `json:"tiles"`
	Coverage    float64 `json:"coverage"`
	ObjectCount int     `json:"objectCount"`
	MaxDepth    int     `json:"maxDepth"`
	Luminance   float64 `json:"luminance"`
	PublishedAs string  `json:"publishedAs,omitempty"` // Object key when uploaded
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "tile", "frameComplete", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// RenderingPipeline contains the configured scene and raytracer
type RenderingPipeline struct {
	Scene     *scene.Scene
	Raytracer *renderer.ParallelRaytracer
	Viewport  renderer.Viewport
}

// handleRender renders one frame and streams its tiles via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	s.setSSEHeaders(w)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Create unified SSE event channel for thread-safe writing
	sseEventChan := make(chan SSEEvent, 100)

	// Start single SSE writer goroutine; the handler waits for it so the
	// response writer is never used after return
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(w, ctx, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	// Parse and validate request
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Setup console logging and streaming
	// consoleChan is never closed since a cancelled render may still log
	consoleChan, webLogger := s.setupConsoleLogging()
	consoleStop := make(chan struct{})
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleStop, consoleChan, sseEventChan)
	}()
	defer func() {
		close(consoleStop)
		<-consoleDone
	}()

	pipeline, err := s.setupRenderingPipeline(req, webLogger)
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	// Start rendering and stream events
	startTime := time.Now()
	renderOptions := renderer.RenderOptions{TileUpdates: true}
	frameChan, tileChan, errChan := pipeline.Raytracer.Render(ctx, pipeline.Viewport, renderOptions)

	s.handleRenderingEvents(ctx, sseEventChan, frameChan, tileChan, errChan, pipeline, req, webLogger, startTime)
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	webLogger := NewWebLogger(NewRenderID(), consoleChan)
	return consoleChan, webLogger
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe)
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				// Channel closed
				return
			}

			// Write SSE event
			_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data)
			if err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// streamConsoleMessages forwards console messages until stop is closed,
// then flushes what is already buffered
func (s *Server) streamConsoleMessages(ctx context.Context, stop <-chan struct{}, consoleChan chan ConsoleMessage, sseEventChan chan SSEEvent) {
	for {
		select {
		case consoleMsg := <-consoleChan:
			s.forwardConsoleMessage(ctx, consoleMsg, sseEventChan)

		case <-stop:
			for {
				select {
				case consoleMsg := <-consoleChan:
					s.forwardConsoleMessage(ctx, consoleMsg, sseEventChan)
				default:
					return
				}
			}

		case <-ctx.Done():
			return
		}
	}
}

// forwardConsoleMessage sends one console message as an SSE event
func (s *Server) forwardConsoleMessage(ctx context.Context, consoleMsg ConsoleMessage, sseEventChan chan SSEEvent) {
	data, err := json.Marshal(consoleMsg)
	if err != nil {
		log.Printf("Error marshaling console message: %v", err)
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
	case <-ctx.Done():
	default:
		// Channel full, skip message to avoid blocking
	}
}

// setupRenderingPipeline creates and configures the scene and raytracer
func (s *Server) setupRenderingPipeline(req *RenderRequest, logger core.Logger) (*RenderingPipeline, error) {
	sceneObj, err := s.createScene(req)
	if err != nil {
		return nil, err
	}
	logger.Printf("Scene %q: %d spheres, floor at y=%g\n", req.Scene, sceneObj.GetObjectCount(), s.config.FloorY)

	integratorInst := integrator.NewMirrorIntegrator(integrator.Config{MaxDepth: req.MaxDepth})
	config := renderer.ParallelConfig{
		TileSize:   DefaultTileSize,
		NumWorkers: s.config.NumWorkers,
	}

	return &RenderingPipeline{
		Scene:     sceneObj,
		Raytracer: renderer.NewParallelRaytracer(sceneObj, integratorInst, req.Width, req.Height, config, logger),
		Viewport:  renderer.CenteredViewport(req.SceneWidth, req.SceneHeight),
	}, nil
}

// handleRenderingEvents processes the main rendering event loop
func (s *Server) handleRenderingEvents(ctx context.Context, sseEventChan chan SSEEvent,
	frameChan <-chan renderer.FrameResult, tileChan <-chan renderer.TileCompletionResult, errChan <-chan error,
	pipeline *RenderingPipeline, req *RenderRequest, logger core.Logger, startTime time.Time) {

	for frameChan != nil || tileChan != nil || errChan != nil {
		select {
		case frameResult, ok := <-frameChan:
			if !ok {
				frameChan = nil
				continue
			}
			// Drain remaining tiles so the frame event follows them
			if tileChan != nil {
				for tileResult := range tileChan {
					s.handleTileUpdate(ctx, sseEventChan, tileResult)
				}
				tileChan = nil
			}
			s.handleFrameComplete(ctx, sseEventChan, frameResult, pipeline, req, logger, startTime)

		case tileResult, ok := <-tileChan:
			if !ok {
				tileChan = nil
				continue
			}
			s.handleTileUpdate(ctx, sseEventChan, tileResult)

		case err, ok := <-errChan:
			if !ok {
				errChan = nil
				continue
			}
			s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
			return

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}

	// Send completion event
	select {
	case sseEventChan <- SSEEvent{Type: "complete", Data: "Rendering completed"}:
	case <-ctx.Done():
	}
}

// handleFrameComplete sends frame statistics and publishes the frame when requested
func (s *Server) handleFrameComplete(ctx context.Context, sseEventChan chan SSEEvent, frameResult renderer.FrameResult,
	pipeline *RenderingPipeline, req *RenderRequest, logger core.Logger, startTime time.Time) {

	update := FrameUpdate{
		Event:       "frameComplete",
		Width:       req.Width,
		Height:      req.Height,
		ElapsedMs:   time.Since(startTime).Milliseconds(),
		TotalPixels: frameResult.Stats.TotalPixels,
		EmptyPixels: frameResult.Stats.EmptyPixels,
		Tiles:       frameResult.Stats.Tiles,
		Coverage:    frameResult.Stats.Coverage(),
		ObjectCount: pipeline.Scene.GetObjectCount(),
		MaxDepth:    req.MaxDepth,
		Luminance:   renderer.CalculateAverageLuminance(frameResult.Image),
	}

	if req.Upload {
		if s.publisher == nil {
			logger.Printf("Upload requested but no bucket is configured\n")
		} else {
			key, err := s.publisher.PublishImage(ctx, req.Scene, frameResult.Image)
			if err != nil {
				logger.Printf("Upload failed: %v\n", err)
			} else {
				update.PublishedAs = key
			}
		}
	}

	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("Error marshaling frame update: %v", err)
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "frameComplete", Data: string(data)}:
	case <-ctx.Done():
	}
}

// handleTileUpdate processes and sends tile update events
func (s *Server) handleTileUpdate(ctx context.Context, sseEventChan chan SSEEvent, tileResult renderer.TileCompletionResult) {
	// Check if client is still connected
	select {
	case <-ctx.Done():
		return
	default:
	}

	// Convert tile image to base64 PNG
	tileData, err := s.imageToBase64PNG(tileResult.TileImage)
	if err != nil {
		log.Printf("Error encoding tile image (%d, %d): %v", tileResult.X, tileResult.Y, err)
		return
	}

	update := TileUpdate{
		X:          tileResult.X,
		Y:          tileResult.Y,
		ImageData:  tileData,
		TileNumber: tileResult.TileNumber,
		TotalTiles: tileResult.TotalTiles,
	}

	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("Error marshaling tile update: %v", err)
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "tile", Data: string(data)}:
	case <-ctx.Done():
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}
	req.Upload = r.URL.Query().Get("upload") == "true"

	// Performance warning
	if req.Width*req.Height > 800*600 && req.MaxDepth > 16 {
		log.Printf("Render warning: Large image with deep reflections may render slowly")
	}

	return req, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}
