package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-mirror-raytracer/pkg/loaders"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to JSON file (json type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

const builtinGroup = "Built-in Scenes"

type builtinScene struct {
	info   SceneInfo
	create func(opts ...Option) (*Scene, error)
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Nine reflective spheres above a mirrored floor",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "default-shifted",
			Name:        "Default Scene (shifted light)",
			Description: "Default scene with the light moved 20 units to the right",
		},
		create: NewShiftedLightScene,
	},
	{
		info: SceneInfo{
			ID:          "facing-mirrors",
			Name:        "Facing Mirrors",
			Description: "Two perfect mirrors reflecting into each other",
		},
		create: NewFacingMirrorsScene,
	},
}

// Create builds the scene with the given id. Only built-in ids and
// "json:<name>" for discovered scene files are accepted.
func Create(id string, floorY float64) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.create(WithFloorY(floorY))
		}
	}

	if name, ok := strings.CutPrefix(id, "json:"); ok {
		files, err := ListSceneFiles()
		if err != nil {
			return nil, err
		}
		for _, info := range files {
			if info.ID == "json:"+name {
				return NewJSONScene(info.FilePath, floorY)
			}
		}
	}

	return nil, fmt.Errorf("unknown scene: %q", id)
}

// CreateFromPath loads a scene file from an arbitrary .json path
func CreateFromPath(path string, floorY float64) (*Scene, error) {
	if !strings.HasSuffix(path, ".json") {
		return nil, fmt.Errorf("scene file %q is not a .json file", path)
	}
	return NewJSONScene(path, floorY)
}

// ListBuiltinScenes returns metadata for the scenes compiled into the binary
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		info := b.info
		info.DisplayName = info.Name
		info.Group = builtinGroup
		info.Type = "builtin"
		scenes = append(scenes, info)
	}
	return scenes
}

// ListSceneFiles scans the scenes directory and returns discovered JSON scenes
func ListSceneFiles() ([]SceneInfo, error) {
	// Try different possible paths for scenes directory
	possiblePaths := []string{"scenes", "../scenes"}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return ListSceneFilesIn(path)
		}
	}

	// No scenes directory found, return empty list
	return []SceneInfo{}, nil
}

// ListSceneFilesIn returns the JSON scenes found in dir
func ListSceneFilesIn(dir string) ([]SceneInfo, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseSceneMetadata reads the name, description and group of a JSON scene
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	nameWithoutExt := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	info := SceneInfo{
		ID:          "json:" + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       "Scene Files",
		Type:        "json",
		FilePath:    filePath,
	}

	file, err := loaders.LoadSceneFile(filePath)
	if err != nil {
		return info, err
	}

	if file.Name != "" {
		info.Name = file.Name
		info.DisplayName = file.Name
	}
	if file.Group != "" {
		info.Group = file.Group
	}
	info.Description = file.Description

	return info, nil
}

// ListAllScenes returns both built-in and file scenes, grouped by category
func ListAllScenes() (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := ListSceneFiles()
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	allScenes := append(ListBuiltinScenes(), fileScenes...)

	// Group scenes by their Group field
	groupMap := make(map[string][]SceneInfo)
	for _, s := range allScenes {
		groupMap[s.Group] = append(groupMap[s.Group], s)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	response.Groups = append(response.Groups, SceneGroup{
		Name:   builtinGroup,
		Scenes: groupMap[builtinGroup],
	})
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "facing-mirrors" -> "Facing Mirrors"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
