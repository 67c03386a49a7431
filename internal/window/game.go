//go:build cgo || !(linux || freebsd || netbsd || openbsd)

package window

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"octahedron-viewer/internal/framecache"
	"octahedron-viewer/internal/raster"
	"octahedron-viewer/internal/shell"
)

var (
	barColor    = color.RGBA{0xEE, 0xEE, 0xEE, 0xFF}
	buttonColor = color.RGBA{0xD0, 0xD0, 0xD8, 0xFF}
	fieldColor  = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	focusColor  = color.RGBA{0x40, 0x60, 0xC0, 0xFF}
	edgeColor   = color.RGBA{0x80, 0x80, 0x80, 0xFF}
)

// Options configures the desktop window.
type Options struct {
	Title      string
	Width      int
	Height     int
	Scale      string
	Render     raster.Options // Width/Height are overwritten per frame
	FrameCache int
	Logger     *slog.Logger
}

// Run opens the window and blocks until it is closed.
func Run(ctl *shell.Controller, opts Options) error {
	g, err := newGame(ctl, opts)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	ctl    *shell.Controller
	opts   Options
	log    *slog.Logger
	field  *Field
	layout Layout
	w, h   int

	frames *framecache.Cache[*ebiten.Image]
	status string
	failed bool
}

func newGame(ctl *shell.Controller, opts Options) (*game, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	g := &game{
		ctl:   ctl,
		opts:  opts,
		log:   log,
		field: NewField(opts.Scale, 16),
	}
	if err := g.resetFrames(); err != nil {
		return nil, err
	}
	g.resize(opts.Width, opts.Height)
	// Frames are drawn from the cache every tick; a mutation only has to
	// change the model for the next Draw to pick up the new frame.
	ctl.SetRedraw(func() { log.Debug("redraw requested") })
	return g, nil
}

func (g *game) resetFrames() error {
	frames, err := framecache.NewWithEvict(g.opts.FrameCache, func(_ raster.Frame, img *ebiten.Image) {
		img.Deallocate()
	})
	if err != nil {
		return err
	}
	g.frames = frames
	return nil
}

func (g *game) resize(w, h int) {
	if w == g.w && h == g.h {
		return
	}
	g.w, g.h = w, h
	g.layout = NewLayout(w, h)
	// Cached frames were projected for the old canvas size.
	if err := g.resetFrames(); err != nil {
		g.log.Warn("frame cache reset failed", "err", err)
	}
}

func (g *game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		tgt, a := g.layout.HitTest(x, y)
		g.field.Focused = tgt == TargetField
		if tgt == TargetButton {
			g.dispatch(a)
		}
	}

	if g.field.Focused {
		g.field.Insert(ebiten.AppendInputChars(nil))
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			g.field.Backspace()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.dispatch(shell.ActionResize)
	}
	if !g.field.Focused && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.dispatch(shell.ActionRotate)
	}
	return nil
}

func (g *game) dispatch(a shell.Action) {
	if err := g.ctl.Dispatch(a, g.field.Value()); err != nil {
		g.status = err.Error()
		g.failed = true
		return
	}
	g.failed = false
	g.status = a.Label()
}

func (g *game) Draw(screen *ebiten.Image) {
	frame, err := g.frame()
	if err != nil {
		g.log.Error("render failed", "err", err)
		screen.Fill(color.White)
		ebitenutil.DebugPrintAt(screen, err.Error(), g.layout.Status.X, g.layout.Status.Y)
	} else if frame != nil {
		screen.DrawImage(frame, nil)
	}

	bar := g.layout.Bar
	vector.DrawFilledRect(screen, float32(bar.Min.X), float32(bar.Min.Y), float32(bar.Dx()), float32(bar.Dy()), barColor, false)
	for _, b := range g.layout.Buttons {
		r := b.Rect
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), buttonColor, false)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, edgeColor, false)
		ebitenutil.DebugPrintAt(screen, b.Action.Label(), r.Min.X+8, r.Min.Y+4)
	}

	f := g.layout.Field
	border := edgeColor
	if g.field.Focused {
		border = focusColor
	}
	vector.DrawFilledRect(screen, float32(f.Min.X), float32(f.Min.Y), float32(f.Dx()), float32(f.Dy()), fieldColor, false)
	vector.StrokeRect(screen, float32(f.Min.X), float32(f.Min.Y), float32(f.Dx()), float32(f.Dy()), 1, border, false)
	ebitenutil.DebugPrintAt(screen, g.field.Value(), f.Min.X+6, f.Min.Y+4)

	if g.status != "" {
		msg := g.status
		if g.failed {
			msg = fmt.Sprintf("error: %s", g.status)
		}
		ebitenutil.DebugPrintAt(screen, msg, g.layout.Status.X, g.layout.Status.Y)
	}
}

// frame returns the rendered wireframe for the current model, or nil when
// the canvas has no area.
func (g *game) frame() (*ebiten.Image, error) {
	c := g.layout.Canvas
	if c.Dx() <= 0 || c.Dy() <= 0 {
		return nil, nil
	}
	segs, err := raster.Project(g.ctl.Model(), c.Dx(), c.Dy())
	if err != nil {
		return nil, err
	}
	return g.frames.GetOrRender(raster.FrameOf(segs), func() (*ebiten.Image, error) {
		opts := g.opts.Render
		opts.Width, opts.Height = c.Dx(), c.Dy()
		img, err := raster.Render(segs, opts)
		if err != nil {
			return nil, err
		}
		return ebiten.NewImageFromImage(img), nil
	})
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
