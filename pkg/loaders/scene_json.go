package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// SceneFile is the on-disk JSON description of a scene
type SceneFile struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Group       string         `json:"group,omitempty"`
	FloorY      *float64       `json:"floorY,omitempty"` // nil keeps the configured floor
	Light       LightConfig    `json:"light"`
	Spheres     []SphereConfig `json:"spheres"`
}

// LightConfig describes the scene light
type LightConfig struct {
	Position [3]float64 `json:"position"`
	Ambient  ColorValue `json:"ambient"`
	Diffuse  ColorValue `json:"diffuse"`
	Specular ColorValue `json:"specular"`
}

// SphereConfig describes one sphere. Either Color is set, and reused for
// all three reflectance colors, or Ambient, Diffuse and Specular are.
type SphereConfig struct {
	Center           [3]float64 `json:"center"`
	Radius           float64    `json:"radius"`
	Color            ColorValue `json:"color,omitempty"`
	Ambient          ColorValue `json:"ambient,omitempty"`
	Diffuse          ColorValue `json:"diffuse,omitempty"`
	Specular         ColorValue `json:"specular,omitempty"`
	Reflectivity     float64    `json:"reflectivity"`
	SpecularExponent float64    `json:"specularExponent"`
}

// ColorValue is an RGB or RGBA channel list; alpha defaults to 1
type ColorValue []float64

// Color converts the channel list to a core.Color
func (c ColorValue) Color() (core.Color, error) {
	switch len(c) {
	case 3:
		return core.NewColor(c[0], c[1], c[2], 1), nil
	case 4:
		return core.NewColor(c[0], c[1], c[2], c[3]), nil
	default:
		return core.Color{}, fmt.Errorf("color needs 3 or 4 channels, got %d", len(c))
	}
}

// Materials returns the ambient, diffuse and specular colors of the sphere
func (s SphereConfig) Materials() (ambient, diffuse, specular core.Color, err error) {
	if len(s.Color) > 0 {
		if len(s.Ambient)+len(s.Diffuse)+len(s.Specular) > 0 {
			return ambient, diffuse, specular, fmt.Errorf("sphere sets both color and ambient/diffuse/specular")
		}
		tint, err := s.Color.Color()
		if err != nil {
			return ambient, diffuse, specular, fmt.Errorf("color: %w", err)
		}
		return tint, tint, tint, nil
	}

	if ambient, err = s.Ambient.Color(); err != nil {
		return ambient, diffuse, specular, fmt.Errorf("ambient: %w", err)
	}
	if diffuse, err = s.Diffuse.Color(); err != nil {
		return ambient, diffuse, specular, fmt.Errorf("diffuse: %w", err)
	}
	if specular, err = s.Specular.Color(); err != nil {
		return ambient, diffuse, specular, fmt.Errorf("specular: %w", err)
	}
	return ambient, diffuse, specular, nil
}

// ParseSceneFile decodes a JSON scene description
func ParseSceneFile(reader io.Reader) (*SceneFile, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	var file SceneFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	if len(file.Spheres) == 0 {
		return nil, fmt.Errorf("scene %q has no spheres", file.Name)
	}
	return &file, nil
}

// LoadSceneFile reads and decodes a JSON scene file from disk
func LoadSceneFile(filename string) (*SceneFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	sceneFile, err := ParseSceneFile(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sceneFile, nil
}
