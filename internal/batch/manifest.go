package batch

import (
	"encoding/json"
	"os"

	"octahedron-viewer/internal/solid"
)

// ManifestEntry describes one exported frame.
type ManifestEntry struct {
	Step     int                          `json:"step"`
	Degrees  int                          `json:"degrees"`
	File     string                       `json:"file,omitempty"`
	Vertices [solid.VertexCount][3]float64 `json:"vertices"`
}

// Manifest is the manifest.json document.
type Manifest struct {
	Animation string          `json:"animation,omitempty"`
	Edges     []solid.Edge    `json:"edges"`
	Frames    []ManifestEntry `json:"frames"`
}

// WriteManifest writes manifest.json for a finished run.
func WriteManifest(path string, animation string, results []Result) error {
	m := Manifest{Animation: animation, Frames: make([]ManifestEntry, 0, len(results))}
	for _, r := range results {
		if !r.Success {
			continue
		}
		if m.Edges == nil {
			m.Edges = r.Model.Edges()
		}
		e := ManifestEntry{
			Step:    r.Step,
			Degrees: (r.Step * solid.StepDegrees) % 360,
			File:    r.File,
		}
		for i, v := range r.Model.Vertices() {
			e.Vertices[i] = v
		}
		m.Frames = append(m.Frames, e)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
