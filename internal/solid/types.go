package solid

import (
	"errors"

	"octahedron-viewer/internal/mathutil"
)

const (
	VertexCount = 6
	EdgeCount   = 12

	// StepDegrees is the angle applied by one RotateStep, about the Y axis.
	StepDegrees = 10
)

// ErrIndexOutOfRange is returned by VertexAt for an index outside [0, VertexCount).
var ErrIndexOutOfRange = errors.New("solid: vertex index out of range")

// Vertex is a point in model space. It is a value: copies never alias a Model.
type Vertex = mathutil.Vec3

// Edge connects two vertex slots by index.
type Edge struct {
	A int `json:"a"`
	B int `json:"b"`
}
