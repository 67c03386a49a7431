package raster

import (
	"errors"
	"testing"

	"octahedron-viewer/internal/solid"
)

func TestProjectInitialOctahedron(t *testing.T) {
	segs, err := Project(solid.NewOctahedron(50), 600, 600)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if len(segs) != solid.EdgeCount {
		t.Fatalf("len = %d, want %d", len(segs), solid.EdgeCount)
	}
	// (0,1): top (0,50) to right (50,0)
	if want := (Segment{300, 250, 350, 300}); segs[0] != want {
		t.Errorf("segment 0 = %+v, want %+v", segs[0], want)
	}
	// (0,4): top to front; front projects onto the centre
	if want := (Segment{300, 250, 300, 300}); segs[4] != want {
		t.Errorf("segment 4 = %+v, want %+v", segs[4], want)
	}
}

func TestProjectTruncatesTowardZero(t *testing.T) {
	m := solid.NewOctahedron(10)
	m.Resize(0.99) // x,y → 9.9
	segs, err := Project(m, 100, 100)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	// (2,3): bottom (0,-9.9) to left (-9.9,0); int(-9.9) == -9
	if want := (Segment{50, 59, 41, 50}); segs[2] != want {
		t.Fatalf("segment 2 = %+v, want %+v", segs[2], want)
	}
}

func TestProjectIgnoresZ(t *testing.T) {
	m := solid.NewOctahedron(20)
	segs, err := Project(m, 10, 10)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	// front (4) and back (5) both sit on the centre.
	if segs[5].X1 != 5 || segs[5].Y1 != 5 || segs[9].X1 != 5 || segs[9].Y1 != 5 {
		t.Fatalf("z not dropped: %+v %+v", segs[5], segs[9])
	}
}

type badSource struct{ *solid.Model }

func (badSource) Edges() []solid.Edge { return []solid.Edge{{0, 6}} }

func TestProjectPropagatesIndexError(t *testing.T) {
	_, err := Project(badSource{solid.NewOctahedron(1)}, 10, 10)
	if !errors.Is(err, solid.ErrIndexOutOfRange) {
		t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestFrameOfIsComparable(t *testing.T) {
	a := solid.NewOctahedron(30.5)
	b := a.Clone()
	for i := 0; i < 36; i++ {
		b.RotateStep()
	}
	sa, _ := Project(a, 200, 200)
	sb, _ := Project(b, 200, 200)
	if FrameOf(sa) != FrameOf(sb) {
		t.Fatal("full turn should project to the same frame")
	}
}
