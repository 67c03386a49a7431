package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"

	"octahedron-viewer/internal/solid"
)

func darkest(img *image.NRGBA) uint8 {
	min := uint8(255)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r := img.NRGBAAt(x, y).R; r < min {
				min = r
			}
		}
	}
	return min
}

func TestRenderSize(t *testing.T) {
	opts := DefaultOptions(120, 80)
	opts.Supersample = 2
	img, err := RenderModel(solid.NewOctahedron(20), opts)
	if err != nil {
		t.Fatalf("RenderModel: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Fatalf("bounds = %v, want 120x80", b)
	}
}

func TestRenderEmptyIsBackground(t *testing.T) {
	img, err := Render(nil, DefaultOptions(16, 16))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.NRGBAAt(8, 8); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Fatalf("pixel = %+v, want white", got)
	}
}

func TestRenderDrawsLines(t *testing.T) {
	segs := []Segment{{0, 10, 19, 10}}
	img, err := Render(segs, DefaultOptions(20, 20))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if d := darkest(img); d > 128 {
		t.Fatalf("no dark pixels drawn (darkest red = %d)", d)
	}
	if got := img.NRGBAAt(10, 2); got.R < 250 {
		t.Fatalf("pixel away from line = %+v, want background", got)
	}
}

func TestRenderBackdrop(t *testing.T) {
	bd := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(bd.Pix); i += 4 {
		bd.Pix[i], bd.Pix[i+1], bd.Pix[i+2], bd.Pix[i+3] = 0, 0, 255, 255
	}
	opts := DefaultOptions(10, 10)
	opts.Backdrop = bd
	opts.LineColor = gg.Black
	img, err := Render(nil, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.NRGBAAt(5, 5); got.B < 250 || got.R > 5 {
		t.Fatalf("pixel = %+v, want backdrop blue", got)
	}
}

func TestRenderRejectsEmptyViewport(t *testing.T) {
	if _, err := Render(nil, DefaultOptions(0, 10)); err == nil {
		t.Fatal("expected error for zero width")
	}
}
