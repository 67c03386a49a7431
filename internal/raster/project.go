package raster

import (
	"fmt"

	"octahedron-viewer/internal/solid"
)

// VertexSource is the read side of a solid model.
type VertexSource interface {
	VertexAt(i int) (solid.Vertex, error)
	Edges() []solid.Edge
}

// Segment is a screen-space line in whole pixels.
type Segment struct {
	X0, Y0, X1, Y1 int
}

// Frame is the projected wireframe of an octahedron. It is comparable and
// serves as a cache key.
type Frame [solid.EdgeCount]Segment

// Project maps every edge of src to screen space: x and y are truncated
// toward zero, offset by half the viewport and y is flipped. z is ignored.
func Project(src VertexSource, width, height int) ([]Segment, error) {
	edges := src.Edges()
	segs := make([]Segment, 0, len(edges))
	cx, cy := width/2, height/2
	for _, e := range edges {
		a, err := src.VertexAt(e.A)
		if err != nil {
			return nil, fmt.Errorf("raster: edge %v: %w", e, err)
		}
		b, err := src.VertexAt(e.B)
		if err != nil {
			return nil, fmt.Errorf("raster: edge %v: %w", e, err)
		}
		segs = append(segs, Segment{
			X0: int(a[0]) + cx,
			Y0: cy - int(a[1]),
			X1: int(b[0]) + cx,
			Y1: cy - int(b[1]),
		})
	}
	return segs, nil
}

// FrameOf packs segs into a Frame. Extra segments are dropped and missing
// ones stay zero.
func FrameOf(segs []Segment) Frame {
	var f Frame
	copy(f[:], segs)
	return f
}
