//go:build !cgo && (linux || freebsd || netbsd || openbsd)

package window

import (
	"errors"
	"log/slog"

	"octahedron-viewer/internal/raster"
	"octahedron-viewer/internal/shell"
)

// Options configures the desktop window.
type Options struct {
	Title      string
	Width      int
	Height     int
	Scale      string
	Render     raster.Options
	FrameCache int
	Logger     *slog.Logger
}

// Run reports that the desktop window is unavailable in this build.
func Run(ctl *shell.Controller, opts Options) error {
	return errors.New("window: built without cgo; use -tui")
}
