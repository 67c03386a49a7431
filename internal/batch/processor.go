package batch

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"octahedron-viewer/internal/output"
	"octahedron-viewer/internal/raster"
	"octahedron-viewer/internal/solid"
)

// Config holds the shared settings for one export run.
type Config struct {
	OutputDir   string
	Render      raster.Options
	Steps       int    // frames to export, one RotateStep apart
	Format      string // per-frame extension, e.g. ".png"; empty skips frame files
	Animation   string // animated WebP file name inside OutputDir; empty skips it
	DelayMs     uint
	JPEGQuality int
	Workers     int
	Progress    func(done, total int) // optional, called every 2s
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Step    int
	File    string
	Model   *solid.Model
	Image   *image.NRGBA
	Success bool
	Error   string
}

// Run renders cfg.Steps frames of m rotating about Y and writes them out.
// m itself is not modified; each frame renders its own clone.
func Run(cfg Config, m *solid.Model) ([]Result, error) {
	if cfg.Steps <= 0 {
		return nil, fmt.Errorf("batch: steps must be positive, got %d", cfg.Steps)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	// Capture every step sequentially; rotation accumulates.
	states := make([]*solid.Model, cfg.Steps)
	cur := m.Clone()
	for i := range states {
		states[i] = cur.Clone()
		cur.RotateStep()
	}

	total := len(states)
	results := make([]Result, total)
	var processed atomic.Int64

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					cfg.Progress(int(processed.Load()), total)
				}
			}
		}()
	}

	// Worker pool
	stepChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range stepChan {
				results[idx] = processStep(cfg, idx, states[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range states {
		stepChan <- i
	}
	close(stepChan)

	wg.Wait()
	close(done)

	if cfg.Animation != "" {
		frames := make([]image.Image, 0, total)
		for _, r := range results {
			if !r.Success {
				return results, fmt.Errorf("batch: frame %d failed, animation skipped: %s", r.Step, r.Error)
			}
			frames = append(frames, r.Image)
		}
		path := filepath.Join(cfg.OutputDir, cfg.Animation)
		if err := output.SaveAnimation(path, frames, cfg.DelayMs); err != nil {
			return results, err
		}
	}

	return results, nil
}

func processStep(cfg Config, step int, m *solid.Model) Result {
	res := Result{Step: step, Model: m}

	img, err := raster.RenderModel(m, cfg.Render)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Image = img

	if cfg.Format != "" {
		res.File = fmt.Sprintf("frame_%03d%s", step, cfg.Format)
		if err := output.Save(filepath.Join(cfg.OutputDir, res.File), img, cfg.JPEGQuality); err != nil {
			res.Error = err.Error()
			return res
		}
	}

	res.Success = true
	return res
}
