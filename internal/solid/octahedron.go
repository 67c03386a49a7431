package solid

import (
	"fmt"

	"octahedron-viewer/internal/mathutil"
)

// octahedronEdges is the fixed topology: the square in the XY plane, then
// the front (+Z) and back (-Z) pyramids.
var octahedronEdges = [EdgeCount]Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{0, 4}, {1, 4}, {2, 4}, {3, 4},
	{0, 5}, {1, 5}, {2, 5}, {3, 5},
}

var stepRotation = mathutil.RotY(mathutil.Deg2Rad(StepDegrees))

// Model holds the current vertex positions and the immutable edge list of a
// polyhedron. It is not safe for concurrent use; the owner serialises calls.
type Model struct {
	verts [VertexCount]Vertex
	edges [EdgeCount]Edge
}

// NewOctahedron builds an octahedron centered at the origin whose vertices
// lie at distance size on each axis. Zero or negative sizes are accepted.
func NewOctahedron(size float64) *Model {
	return &Model{
		verts: [VertexCount]Vertex{
			{0, size, 0},  // top
			{size, 0, 0},  // right
			{0, -size, 0}, // bottom
			{-size, 0, 0}, // left
			{0, 0, size},  // front
			{0, 0, -size}, // back
		},
		edges: octahedronEdges,
	}
}

// Resize multiplies the x and y components of every vertex by factor.
// The z component is left as is: a resize is not uniform and repeated
// calls change the proportions along z.
func (m *Model) Resize(factor float64) {
	for i := range m.verts {
		m.verts[i] = m.verts[i].ScaleXY(factor)
	}
}

// RotateStep rotates every vertex StepDegrees about the Y axis.
func (m *Model) RotateStep() {
	for i := range m.verts {
		m.verts[i] = stepRotation.MulVec3(m.verts[i])
	}
}

// VertexAt returns a copy of vertex i.
func (m *Model) VertexAt(i int) (Vertex, error) {
	if i < 0 || i >= VertexCount {
		return Vertex{}, fmt.Errorf("%w: %d not in [0,%d]", ErrIndexOutOfRange, i, VertexCount-1)
	}
	return m.verts[i], nil
}

// Edges returns the edge list in construction order. The slice is fresh on
// every call.
func (m *Model) Edges() []Edge {
	out := make([]Edge, EdgeCount)
	copy(out, m.edges[:])
	return out
}

// Vertices returns a snapshot of all vertex positions.
func (m *Model) Vertices() [VertexCount]Vertex {
	return m.verts
}

// Clone returns an independent copy of the model.
func (m *Model) Clone() *Model {
	c := *m
	return &c
}
