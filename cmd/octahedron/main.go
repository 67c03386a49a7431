package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"octahedron-viewer/internal/config"
	"octahedron-viewer/internal/shell"
	"octahedron-viewer/internal/solid"
	"octahedron-viewer/internal/tui"
	"octahedron-viewer/internal/window"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	useTUI := flag.Bool("tui", false, "Run in the terminal instead of a window")
	size := flag.Float64("size", 0, "Initial vertex distance from the origin, 0 allowed (default: 50)")
	scale := flag.String("scale", "", "Initial text of the scale field (default: 2)")
	width := flag.Int("width", 0, "Window width in pixels (default: 600)")
	height := flag.Int("height", 0, "Window height in pixels (default: 600)")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gg.SetLogger(logger)

	cfg, baseDir, err := config.LoadOptional(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{
		Size:    *size,
		SizeSet: flagGiven("size"),
		Scale:   *scale,
		Width:   *width,
		Height:  *height,
	}, baseDir)

	renderOpts, err := cfg.RenderOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctl := shell.NewController(solid.NewOctahedron(cfg.ModelSize()), nil)
	ctl.SetLogger(logger)

	if *useTUI {
		// The terminal belongs to the UI; keep log output off it.
		ctl.SetLogger(nil)
		m, err := tui.New(ctl, cfg.Width, cfg.Height, cfg.DefaultScale, cfg.FrameCache, nil)
		if err == nil {
			err = tui.Run(m)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := window.Run(ctl, window.Options{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Scale:      cfg.DefaultScale,
		Render:     renderOpts,
		FrameCache: cfg.FrameCache,
		Logger:     logger,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flagGiven reports whether name was set on the command line.
func flagGiven(name string) bool {
	given := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			given = true
		}
	})
	return given
}
