package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/integrator"
	"github.com/df07/go-mirror-raytracer/pkg/material"
	"github.com/df07/go-mirror-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`         // A sphere was hit
	Floor        bool                   `json:"floor"`       // The ray reflected off the floor
	ObjectIndex  int                    `json:"objectIndex"` // -1 when no sphere was hit
	GeometryType string                 `json:"geometryType"`
	Origin       [3]float64             `json:"origin"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Direct       [4]float64             `json:"direct"` // Phong color at the hit
	Final        [4]float64             `json:"final"`  // Traced pixel color
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo reports the Phong and mirror parameters of a material
func (s *Server) extractMaterialInfo(mat material.Material) map[string]interface{} {
	return map[string]interface{}{
		"ambient":          colorArray(mat.Ambient),
		"diffuse":          colorArray(mat.Diffuse),
		"specular":         colorArray(mat.Specular),
		"specularExponent": mat.SpecularExponent,
		"reflectivity":     mat.Reflectivity,
		"color": fmt.Sprintf("#%02x%02x%02x",
			int(clamp01(mat.Diffuse.R)*255), int(clamp01(mat.Diffuse.G)*255), int(clamp01(mat.Diffuse.B)*255)),
	}
}

// handleInspect traces the primary ray of one pixel and reports what it hit.
// x and y are image coordinates with y = 0 at the top row.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	query := r.URL.Query()
	if query.Get("x") == "" || query.Get("y") == "" {
		writeJSONError(w, http.StatusBadRequest, "x and y are required")
		return
	}
	x, err := parseIntParam(query, "x", 0, 0, req.Width-1)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", 0, 0, req.Height-1)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Buffer rows start at the bottom of the viewport
	camera := renderer.NewOrthographicCamera(renderer.CenteredViewport(req.SceneWidth, req.SceneHeight), req.Width, req.Height)
	ray := camera.GetRay(x, req.Height-1-y)

	mirror := integrator.NewMirrorIntegrator(integrator.Config{MaxDepth: req.MaxDepth})
	inspection := mirror.Inspect(ray, sceneObj)

	response := InspectResponse{
		Hit:         inspection.Hit,
		Floor:       inspection.Floor,
		ObjectIndex: inspection.Index,
		Origin:      pointArray(ray.Origin),
		Final:       colorArray(inspection.Final),
		Properties:  map[string]interface{}{},
	}

	switch {
	case inspection.Hit:
		response.GeometryType = "sphere"
		response.Properties = s.extractMaterialInfo(inspection.Object.Material)
		response.Properties["center"] = pointArray(inspection.Object.Sphere.Center)
		response.Properties["radius"] = inspection.Object.Sphere.Radius
	case inspection.Floor:
		response.GeometryType = "floor"
		response.Properties["y"] = sceneObj.GetFloor().Y
	}
	if inspection.Hit || inspection.Floor {
		response.Point = pointArray(inspection.Point)
		response.Normal = [3]float64{inspection.Normal.X, inspection.Normal.Y, inspection.Normal.Z}
		response.Distance = inspection.Distance
		response.Direct = colorArray(inspection.Direct)
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func pointArray(p core.Point3) [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

func colorArray(c core.Color) [4]float64 {
	return [4]float64{c.R, c.G, c.B, c.A}
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
