package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gogpu/gg"

	"octahedron-viewer/internal/backdrop"
	"octahedron-viewer/internal/raster"
)

// Config holds viewer, render and export settings.
type Config struct {
	// Model. Size is nil when the file leaves it out; zero is a valid size.
	Size         *float64 `json:"size"`
	DefaultScale string   `json:"default_scale"`

	// Window / viewport
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`

	// Render settings
	LineColor   string  `json:"line_color"`
	Background  string  `json:"background"`
	LineWidth   float64 `json:"line_width"`
	Backdrop    string  `json:"backdrop"`
	Supersample int     `json:"supersample"`
	JPEGQuality int     `json:"jpeg_quality"`
	FrameCache  int     `json:"frame_cache"`

	// Export
	OutputDir string `json:"output_dir"`
	Steps     int    `json:"steps"`
	DelayMs   int    `json:"delay_ms"`
	Workers   int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Size      float64
	SizeSet   bool // -size was given, even as 0
	Scale     string
	Width     int
	Height    int
	OutputDir string
	Workers   int
}

// Resolve applies flag overrides and fills empty fields with defaults.
// baseDir anchors relative paths (normally the config file's directory).
func (c *Config) Resolve(flags Flags, baseDir string) {
	// CLI flags override config file
	if flags.SizeSet {
		size := flags.Size
		c.Size = &size
	}
	if flags.Scale != "" {
		c.DefaultScale = flags.Scale
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Size == nil {
		size := 50.0
		c.Size = &size
	}
	if c.DefaultScale == "" {
		c.DefaultScale = "2"
	}
	if c.Width <= 0 {
		c.Width = 600
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Title == "" {
		c.Title = "Octahedron Drawing"
	}
	if c.LineColor == "" {
		c.LineColor = "#000000"
	}
	if c.Background == "" {
		c.Background = "#ffffff"
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 1
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.JPEGQuality <= 0 {
		c.JPEGQuality = 90
	}
	if c.FrameCache <= 0 {
		c.FrameCache = 64
	}
	if c.Steps <= 0 {
		c.Steps = 36
	}
	if c.DelayMs <= 0 {
		c.DelayMs = 80
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}

	// Resolve relative paths against base dir
	if baseDir != "" {
		if c.Backdrop != "" && !filepath.IsAbs(c.Backdrop) {
			c.Backdrop = filepath.Join(baseDir, c.Backdrop)
		}
		if !filepath.IsAbs(c.OutputDir) {
			c.OutputDir = filepath.Join(baseDir, c.OutputDir)
		}
	}
}

// ModelSize returns the resolved octahedron size, 50 before Resolve has run.
func (c Config) ModelSize() float64 {
	if c.Size == nil {
		return 50
	}
	return *c.Size
}

// Colors parses the configured line and background colours.
func (c Config) Colors() (line, background gg.RGBA, err error) {
	line, err = gg.ParseHex(c.LineColor)
	if err != nil {
		return line, background, fmt.Errorf("config: line_color: %w", err)
	}
	background, err = gg.ParseHex(c.Background)
	if err != nil {
		return line, background, fmt.Errorf("config: background: %w", err)
	}
	return line, background, nil
}

// RenderOptions builds raster options from the resolved config, loading the
// backdrop image if one is configured.
func (c Config) RenderOptions() (raster.Options, error) {
	line, bg, err := c.Colors()
	if err != nil {
		return raster.Options{}, err
	}
	opts := raster.DefaultOptions(c.Width, c.Height)
	opts.LineColor = line
	opts.Background = bg
	opts.LineWidth = c.LineWidth
	opts.Supersample = c.Supersample
	if c.Backdrop != "" {
		bd, err := backdrop.Load(c.Backdrop)
		if err != nil {
			return raster.Options{}, fmt.Errorf("config: %w", err)
		}
		opts.Backdrop = bd
	}
	return opts, nil
}

// LoadOptional loads path when it is non-empty and returns the directory
// relative paths in it resolve against. An empty path yields a zero Config.
func LoadOptional(path string) (Config, string, error) {
	if path == "" {
		return Config{}, "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, filepath.Dir(path), nil
}
