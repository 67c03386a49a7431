package output

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Encode writes img to w in the format named by ext (".webp", ".png",
// ".jpg" or ".jpeg"). WebP output is lossless; quality applies to JPEG only.
func Encode(w io.Writer, ext string, img image.Image, quality int) error {
	switch strings.ToLower(ext) {
	case ".webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("output: WebP encode: %w", err)
		}
	case ".png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("output: PNG encode: %w", err)
		}
	case ".jpg", ".jpeg":
		if quality <= 0 || quality > 100 {
			quality = jpeg.DefaultQuality
		}
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("output: JPEG encode: %w", err)
		}
	default:
		return fmt.Errorf("output: unsupported extension %q", ext)
	}
	return nil
}

// Save encodes img into the file at path, creating parent directories.
func Save(path string, img image.Image, quality int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := Encode(f, filepath.Ext(path), img, quality); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveAnimation writes frames as a looping animated WebP at path. Every frame
// is shown for delayMs milliseconds.
func SaveAnimation(path string, frames []image.Image, delayMs uint) error {
	if len(frames) == 0 {
		return fmt.Errorf("output: animation has no frames")
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".webp" {
		return fmt.Errorf("output: animation needs .webp, got %q", ext)
	}

	ani := &nativewebp.Animation{
		Images:    frames,
		Durations: make([]uint, len(frames)),
		Disposals: make([]uint, len(frames)),
		LoopCount: 0,
	}
	for i := range frames {
		ani.Durations[i] = delayMs
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := nativewebp.EncodeAll(f, ani, nil); err != nil {
		f.Close()
		return fmt.Errorf("output: WebP animation encode: %w", err)
	}
	return f.Close()
}
