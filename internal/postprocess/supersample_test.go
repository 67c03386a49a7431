package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func TestDownsampleSize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	got := Downsample(src, 20, 10)
	if b := got.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("bounds = %v, want 20x10", b)
	}
}

func TestDownsampleNoopWhenSmaller(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	if got := Downsample(src, 16, 16); got != src {
		t.Fatal("expected the source image back")
	}
}

func TestDownsampleKeepsOpaqueColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	red := color.NRGBA{R: 200, G: 10, B: 10, A: 255}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			src.SetNRGBA(x, y, red)
		}
	}
	got := Downsample(src, 8, 8).NRGBAAt(4, 4)
	if got != red {
		t.Fatalf("pixel = %+v, want %+v", got, red)
	}
}

func TestDownsampleTransparentStaysClear(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	got := Downsample(src, 4, 4).NRGBAAt(1, 1)
	if got.A != 0 || got.R != 0 {
		t.Fatalf("pixel = %+v, want transparent black", got)
	}
}
