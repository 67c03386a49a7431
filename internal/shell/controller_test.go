package shell

import (
	"errors"
	"testing"

	"octahedron-viewer/internal/solid"
)

func TestDispatchRotate(t *testing.T) {
	redraws := 0
	c := NewController(solid.NewOctahedron(10), func() { redraws++ })

	if err := c.Dispatch(ActionRotate, "ignored"); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	want := solid.NewOctahedron(10)
	want.RotateStep()
	if c.Model().Vertices() != want.Vertices() {
		t.Fatalf("vertices = %v, want %v", c.Model().Vertices(), want.Vertices())
	}
	if redraws != 1 {
		t.Fatalf("redraws = %d, want 1", redraws)
	}
}

func TestDispatchResize(t *testing.T) {
	redraws := 0
	c := NewController(solid.NewOctahedron(50), func() { redraws++ })
	if err := c.Dispatch(ActionResize, " 2 "); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	v, _ := c.Model().VertexAt(0)
	if v != (solid.Vertex{0, 100, 0}) {
		t.Fatalf("vertex 0 = %v", v)
	}
	z, _ := c.Model().VertexAt(4)
	if z != (solid.Vertex{0, 0, 50}) {
		t.Fatalf("vertex 4 = %v, z must stay 50", z)
	}
	if redraws != 1 {
		t.Fatalf("redraws = %d, want 1", redraws)
	}
}

func TestDispatchBadFactorLeavesModel(t *testing.T) {
	redraws := 0
	c := NewController(solid.NewOctahedron(50), func() { redraws++ })
	before := c.Model().Vertices()

	for _, in := range []string{"", "two", "1,5", "2x"} {
		if err := c.Dispatch(ActionResize, in); !errors.Is(err, ErrBadFactor) {
			t.Errorf("Dispatch(%q) err = %v, want ErrBadFactor", in, err)
		}
	}
	if c.Model().Vertices() != before {
		t.Fatal("model changed on rejected input")
	}
	if redraws != 0 {
		t.Fatalf("redraws = %d, want 0", redraws)
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	c := NewController(solid.NewOctahedron(1), nil)
	if err := c.Dispatch(Action(42), ""); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("err = %v, want ErrUnknownAction", err)
	}
}

func TestHandleOverrides(t *testing.T) {
	c := NewController(solid.NewOctahedron(1), nil)
	called := false
	c.Handle(ActionRotate, func(m *solid.Model, _ string) error {
		called = true
		return nil
	})
	if err := c.Rotate(); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("custom handler not called")
	}
	if v, _ := c.Model().VertexAt(1); v != (solid.Vertex{1, 0, 0}) {
		t.Fatalf("default rotate ran: %v", v)
	}
}

func TestResizeHelperIsExact(t *testing.T) {
	c := NewController(solid.NewOctahedron(3), nil)
	if err := c.Resize(0.1); err != nil {
		t.Fatal(err)
	}
	want := solid.NewOctahedron(3)
	want.Resize(0.1)
	if c.Model().Vertices() != want.Vertices() {
		t.Fatalf("vertices = %v, want %v", c.Model().Vertices(), want.Vertices())
	}
}

func TestParseFactor(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"2", 2, true},
		{"-0.5", -0.5, true},
		{"0", 0, true},
		{"1e3", 1000, true},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseFactor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseFactor(%q) err = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseFactor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestActionNames(t *testing.T) {
	if ActionRotate.Label() != "Rotate" || ActionResize.Label() != "Resize" {
		t.Fatalf("labels = %q %q", ActionRotate.Label(), ActionResize.Label())
	}
	for _, a := range Actions {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseAction("zoom"); ok {
		t.Error("ParseAction(zoom) should fail")
	}
}
