package framecache

import (
	"errors"
	"testing"

	"octahedron-viewer/internal/raster"
	"octahedron-viewer/internal/solid"
)

func frameOf(t *testing.T, m *solid.Model) raster.Frame {
	t.Helper()
	segs, err := raster.Project(m, 400, 400)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	return raster.FrameOf(segs)
}

func TestGetOrRenderHitsAfterFullTurn(t *testing.T) {
	c, err := New[int](64)
	if err != nil {
		t.Fatal(err)
	}
	m := solid.NewOctahedron(100.5)
	renders := 0
	render := func() (int, error) {
		renders++
		return renders, nil
	}

	for step := 0; step < 72; step++ {
		if _, err := c.GetOrRender(frameOf(t, m), render); err != nil {
			t.Fatal(err)
		}
		m.RotateStep()
	}
	if renders > 36 {
		t.Fatalf("renders = %d, want at most 36 for two full turns", renders)
	}
	if c.Len() != renders {
		t.Fatalf("Len = %d, want %d", c.Len(), renders)
	}
}

func TestGetOrRenderDoesNotCacheErrors(t *testing.T) {
	c, err := New[string](4)
	if err != nil {
		t.Fatal(err)
	}
	f := frameOf(t, solid.NewOctahedron(1))
	boom := errors.New("boom")
	if _, err := c.GetOrRender(f, func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if _, ok := c.Get(f); ok {
		t.Fatal("error result was cached")
	}
}

func TestEvict(t *testing.T) {
	var evicted []int
	c, err := NewWithEvict(1, func(_ raster.Frame, v int) { evicted = append(evicted, v) })
	if err != nil {
		t.Fatal(err)
	}
	m := solid.NewOctahedron(40)
	c.Add(frameOf(t, m), 1)
	m.RotateStep()
	c.Add(frameOf(t, m), 2)
	if len(evicted) != 1 || evicted[0] != 1 {
		t.Fatalf("evicted = %v, want [1]", evicted)
	}
}

func TestNewRejectsZeroSize(t *testing.T) {
	if _, err := New[int](0); err == nil {
		t.Fatal("expected error")
	}
}
