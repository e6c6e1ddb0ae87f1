package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable the renderer reads
const EnvPrefix = "RAYTRACER_"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the render constants and the settings of the outer surfaces
type Config struct {
	CanvasWidth  int     // Output pixels per row
	CanvasHeight int     // Output rows
	SceneWidth   float64 // World units covered horizontally
	SceneHeight  float64 // World units covered vertically
	MaxRayDepth  int     // Cast invocations allowed per primary ray
	FloorY       float64 // Height of the mirrored floor

	TileSize    int    // Tile edge for parallel rendering
	NumWorkers  int    // 0 = use CPU count
	OutputDir   string // Root of output/<scene>/render_<ts>.png
	OutputScale int    // Integer upscale factor for saved images
	Port        int    // Web server port

	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3KeyPrefix string
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		CanvasWidth:  300,
		CanvasHeight: 300,
		SceneWidth:   100,
		SceneHeight:  100,
		MaxRayDepth:  4,
		FloorY:       -50,
		TileSize:     32,
		NumWorkers:   0,
		OutputDir:    "output",
		OutputScale:  1,
		Port:         8080,
		S3Region:     "us-east-1",
		S3KeyPrefix:  "renders",
	}
}

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(EnvPrefix + key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
	}
	return f, nil
}

// Load reads rootDir/.env if present, then applies RAYTRACER_* environment
// variables over the defaults. Variables already set in the environment win
// over the .env file.
func Load(rootDir string) (Config, error) {
	envFile := filepath.Join(rootDir, ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
	}

	cfg := Default()
	var err error

	ints := []struct {
		key    string
		target *int
	}{
		{"CANVAS_WIDTH", &cfg.CanvasWidth},
		{"CANVAS_HEIGHT", &cfg.CanvasHeight},
		{"MAX_RAY_DEPTH", &cfg.MaxRayDepth},
		{"TILE_SIZE", &cfg.TileSize},
		{"WORKERS", &cfg.NumWorkers},
		{"OUTPUT_SCALE", &cfg.OutputScale},
		{"PORT", &cfg.Port},
	}
	for _, entry := range ints {
		if *entry.target, err = getEnvInt(entry.key, *entry.target); err != nil {
			return Config{}, err
		}
	}

	if cfg.SceneWidth, err = getEnvFloat("SCENE_WIDTH", cfg.SceneWidth); err != nil {
		return Config{}, err
	}
	if cfg.SceneHeight, err = getEnvFloat("SCENE_HEIGHT", cfg.SceneHeight); err != nil {
		return Config{}, err
	}
	// The floor follows the scene height unless set explicitly
	if cfg.FloorY, err = getEnvFloat("FLOOR_Y", -cfg.SceneHeight/2); err != nil {
		return Config{}, err
	}

	cfg.OutputDir = getEnv("OUTPUT_DIR", cfg.OutputDir)
	cfg.S3Endpoint = getEnv("S3_ENDPOINT", cfg.S3Endpoint)
	cfg.S3Region = getEnv("S3_REGION", cfg.S3Region)
	cfg.S3Bucket = getEnv("S3_BUCKET", cfg.S3Bucket)
	cfg.S3AccessKey = getEnv("S3_ACCESS_KEY", cfg.S3AccessKey)
	cfg.S3SecretKey = getEnv("S3_SECRET_KEY", cfg.S3SecretKey)
	cfg.S3KeyPrefix = getEnv("S3_KEY_PREFIX", cfg.S3KeyPrefix)

	return cfg, nil
}

// Validate rejects settings that cannot produce a frame
func (c Config) Validate() error {
	switch {
	case c.CanvasWidth < 1 || c.CanvasHeight < 1:
		return fmt.Errorf("%w: canvas must be at least 1x1, got %dx%d", ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight)
	case !(c.SceneWidth > 0) || !(c.SceneHeight > 0):
		return fmt.Errorf("%w: scene size must be positive, got %gx%g", ErrInvalidConfig, c.SceneWidth, c.SceneHeight)
	case c.MaxRayDepth < 1:
		return fmt.Errorf("%w: max ray depth must be at least 1, got %d", ErrInvalidConfig, c.MaxRayDepth)
	case c.TileSize < 1:
		return fmt.Errorf("%w: tile size must be at least 1, got %d", ErrInvalidConfig, c.TileSize)
	case c.OutputScale < 1:
		return fmt.Errorf("%w: output scale must be at least 1, got %d", ErrInvalidConfig, c.OutputScale)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// UploadEnabled reports whether enough S3 settings are present to publish
func (c Config) UploadEnabled() bool {
	return c.S3Bucket != ""
}
