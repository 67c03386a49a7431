//go:build !cgo && (linux || freebsd || netbsd || openbsd)

package window

import (
	"strings"
	"testing"

	"octahedron-viewer/internal/shell"
	"octahedron-viewer/internal/solid"
)

func TestRunWithoutCgoPointsAtTUI(t *testing.T) {
	ctl := shell.NewController(solid.NewOctahedron(50), nil)
	err := Run(ctl, Options{Width: 600, Height: 600})
	if err == nil || !strings.Contains(err.Error(), "-tui") {
		t.Fatalf("Run = %v, want error suggesting -tui", err)
	}
}
