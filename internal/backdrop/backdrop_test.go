package backdrop

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoadPNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.RGBA{10, 20, 30, 255})
	path := filepath.Join(t.TempDir(), "bg.png")
	if err := os.WriteFile(path, writePNG(t, src), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Fatalf("pixel = %+v", got)
	}
}

func TestDecodeGrayGetsOpaqueAlpha(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 2, 2))
	g.SetGray(0, 0, color.Gray{Y: 77})
	img, err := Decode(writePNG(t, g), ".PNG")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{77, 77, 77, 255}) {
		t.Fatalf("pixel = %+v", got)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.tga")); err == nil {
		t.Fatal("expected error")
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte("not an image"), ".png"); err == nil {
		t.Fatal("expected error")
	}
}

func TestDecodeUnknownExtension(t *testing.T) {
	if _, err := Decode(nil, ".bmp"); err == nil {
		t.Fatal("expected error")
	}
}
