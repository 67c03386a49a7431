package main

import (
	"fmt"
	"os"
	"strings"

	"octahedron-viewer/internal/raster"
	"octahedron-viewer/internal/shell"
	"octahedron-viewer/internal/solid"
)

// Usage: inspect [size] [rotate | resize:F]...
//
// Applies the actions in order and prints the resulting vertices, edges and
// their 600×600 screen projection.
func main() {
	args := os.Args[1:]
	size := 50.0
	if len(args) > 0 {
		if f, err := shell.ParseFactor(args[0]); err == nil {
			size = f
			args = args[1:]
		}
	}

	ctl := shell.NewController(solid.NewOctahedron(size), nil)
	for _, arg := range args {
		name, input, _ := strings.Cut(arg, ":")
		a, ok := shell.ParseAction(name)
		if !ok {
			fmt.Printf("Error: unknown action %q\n", name)
			os.Exit(1)
		}
		if err := ctl.Dispatch(a, input); err != nil {
			fmt.Printf("Error: %s: %v\n", arg, err)
			os.Exit(1)
		}
	}

	m := ctl.Model()
	fmt.Printf("Size: %g, Actions: %d\n", size, len(args))
	fmt.Println("Vertices:")
	for i := 0; i < solid.VertexCount; i++ {
		v, err := m.VertexAt(i)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  [%d] (%9.3f, %9.3f, %9.3f)  |v|=%.3f\n", i, v[0], v[1], v[2], v.Len())
	}

	segs, err := raster.Project(m, 600, 600)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	verts := m.Vertices()
	fmt.Println("Edges:")
	for i, e := range m.Edges() {
		s := segs[i]
		length := verts[e.B].Sub(verts[e.A]).Len()
		fmt.Printf("  %d-%d  len=%8.3f  (%d,%d) → (%d,%d)\n", e.A, e.B, length, s.X0, s.Y0, s.X1, s.Y1)
	}
}
