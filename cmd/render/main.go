package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"

	"octahedron-viewer/internal/batch"
	"octahedron-viewer/internal/config"
	"octahedron-viewer/internal/output"
	"octahedron-viewer/internal/raster"
	"octahedron-viewer/internal/script"
	"octahedron-viewer/internal/shell"
	"octahedron-viewer/internal/solid"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	size := flag.Float64("size", 0, "Initial vertex distance from the origin, 0 allowed (default: 50)")
	width := flag.Int("width", 0, "Image width in pixels (default: 600)")
	height := flag.Int("height", 0, "Image height in pixels (default: 600)")
	scriptFile := flag.String("script", "", "Lua script driving rotate()/resize()/save()")
	out := flag.String("out", "", "Write the final frame to this file (.webp, .png, .jpg)")
	animate := flag.Bool("animate", false, "Export a full rotation instead of one frame")
	format := flag.String("format", ".png", "Per-frame format when animating; empty for none")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gg.SetLogger(logger)

	// Load config
	cfg, baseDir, err := config.LoadOptional(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Size:      *size,
		SizeSet:   flagGiven("size"),
		Width:     *width,
		Height:    *height,
		OutputDir: *outputDir,
		Workers:   *workers,
	}, baseDir)

	opts, err := cfg.RenderOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctl := shell.NewController(solid.NewOctahedron(cfg.ModelSize()), nil)
	ctl.SetLogger(logger)

	save := func(m *solid.Model, path string) error {
		img, err := raster.RenderModel(m, opts)
		if err != nil {
			return err
		}
		if err := output.Save(path, img, cfg.JPEGQuality); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	// Run script first; the animation starts from wherever it leaves the model.
	if *scriptFile != "" {
		eng := script.NewEngine(ctl, save)
		err := eng.DoFile(*scriptFile)
		eng.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if *animate {
		if err := runAnimate(ctl.Model(), cfg, opts, *format); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	path := *out
	if path == "" {
		if *scriptFile != "" {
			return
		}
		path = filepath.Join(cfg.OutputDir, "octahedron.png")
	}
	if err := save(ctl.Model(), path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runAnimate(m *solid.Model, cfg config.Config, opts raster.Options, format string) error {
	fmt.Printf("Octahedron rotation → WebP\n")
	fmt.Printf("Steps: %d, Workers: %d\n", cfg.Steps, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Render:      opts,
		Steps:       cfg.Steps,
		Format:      format,
		Animation:   "rotation.webp",
		DelayMs:     uint(cfg.DelayMs),
		JPEGQuality: cfg.JPEGQuality,
		Workers:     cfg.Workers,
		Progress: func(done, total int) {
			elapsed := time.Since(start).Seconds()
			fmt.Printf("  [%d/%d] %.1f frames/sec\n", done, total, float64(done)/elapsed)
		},
	}

	results, runErr := batch.Run(batchCfg, m)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Printf("  frame %d: %s\n", r.Step, r.Error)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-failed, len(results))

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, batchCfg.Animation, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if runErr != nil {
		return runErr
	}
	if failed > 0 {
		return fmt.Errorf("%d frames failed", failed)
	}
	return nil
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
