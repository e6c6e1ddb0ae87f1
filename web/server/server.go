package server

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-mirror-raytracer/pkg/config"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

const (
	// DefaultTileSize is the tile edge used for streamed renders
	DefaultTileSize = 32
	// MaxRenderDepth bounds the depth a client may request
	MaxRenderDepth = 64
)

// Publisher uploads finished frames
type Publisher interface {
	PublishImage(ctx context.Context, sceneName string, img image.Image) (string, error)
}

// Server handles web requests for the mirror raytracer
type Server struct {
	port      int
	config    config.Config
	publisher Publisher // nil when uploads are not configured
}

// NewServer creates a new web server. publisher may be nil.
func NewServer(cfg config.Config, publisher Publisher) *Server {
	return &Server{
		port:      cfg.Port,
		config:    cfg,
		publisher: publisher,
	}
}

// RenderRequest represents a render or inspect request from the client
type RenderRequest struct {
	Scene       string  `json:"scene"`       // Scene id (e.g., "default")
	Width       int     `json:"width"`       // Image width
	Height      int     `json:"height"`      // Image height
	MaxDepth    int     `json:"maxDepth"`    // Cast invocations per primary ray
	SceneWidth  float64 `json:"sceneWidth"`  // World units covered horizontally
	SceneHeight float64 `json:"sceneHeight"` // World units covered vertically
	Upload      bool    `json:"upload"`      // Publish the finished frame
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/health", s.handleHealth)

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists built-in and file scenes grouped by category
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	response, err := scene.ListAllScenes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// parseCommonSceneParams parses the parameters shared by render and inspect
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()

	if sceneID := query.Get("scene"); sceneID != "" {
		req.Scene = sceneID
	} else {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", s.config.CanvasWidth, 1, 2000); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", s.config.CanvasHeight, 1, 2000); err != nil {
		return err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", s.config.MaxRayDepth, 1, MaxRenderDepth); err != nil {
		return err
	}
	if req.SceneWidth, err = parseFloatParam(query, "sceneWidth", s.config.SceneWidth, 1e-3, 1e6); err != nil {
		return err
	}
	if req.SceneHeight, err = parseFloatParam(query, "sceneHeight", s.config.SceneHeight, 1e-3, 1e6); err != nil {
		return err
	}

	return nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the requested scene on the configured floor
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.Create(req.Scene, s.config.FloorY)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene %q: %w", req.Scene, err)
	}
	return sceneObj, nil
}
