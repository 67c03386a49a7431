package raster

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"octahedron-viewer/internal/postprocess"
)

// Options controls how a wireframe is painted.
type Options struct {
	Width       int
	Height      int
	LineWidth   float64
	LineColor   gg.RGBA
	Background  gg.RGBA
	Backdrop    image.Image // optional, stretched to fill the viewport
	Supersample int
}

// DefaultOptions returns black lines on white at the given size.
func DefaultOptions(w, h int) Options {
	return Options{
		Width:       w,
		Height:      h,
		LineWidth:   1,
		LineColor:   gg.Black,
		Background:  gg.White,
		Supersample: 1,
	}
}

// Render paints segs into a new image of opts.Width × opts.Height.
func Render(segs []Segment, opts Options) (*image.NRGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("raster: invalid viewport %dx%d", opts.Width, opts.Height)
	}
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	rw, rh := opts.Width*ss, opts.Height*ss

	var dc *gg.Context
	if opts.Backdrop != nil {
		bg := image.NewRGBA(image.Rect(0, 0, rw, rh))
		draw.ApproxBiLinear.Scale(bg, bg.Bounds(), opts.Backdrop, opts.Backdrop.Bounds(), draw.Src, nil)
		dc = gg.NewContextForImage(bg)
	} else {
		dc = gg.NewContext(rw, rh)
		dc.ClearWithColor(opts.Background)
	}
	defer dc.Close()

	k := float64(ss)
	dc.SetColor(opts.LineColor)
	dc.SetLineWidth(opts.LineWidth * k)
	dc.SetLineCap(gg.LineCapRound)

	// Segments are in whole viewport pixels; sample at pixel centres.
	for _, s := range segs {
		dc.DrawLine((float64(s.X0)+0.5)*k, (float64(s.Y0)+0.5)*k, (float64(s.X1)+0.5)*k, (float64(s.Y1)+0.5)*k)
	}
	if len(segs) > 0 {
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("raster: stroke: %w", err)
		}
	}

	img := toNRGBA(dc.Image())
	if ss > 1 {
		img = postprocess.Downsample(img, opts.Width, opts.Height)
	}
	return img, nil
}

// RenderModel projects src and renders it in one call.
func RenderModel(src VertexSource, opts Options) (*image.NRGBA, error) {
	segs, err := Project(src, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	return Render(segs, opts)
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
