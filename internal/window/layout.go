package window

import (
	"image"

	"octahedron-viewer/internal/shell"
)

const (
	barHeight    = 40
	buttonWidth  = 80
	fieldWidth   = 100
	controlH     = 24
	controlGap   = 8
	statusOffset = 12
)

// Target is the control under a point.
type Target int

const (
	TargetNone Target = iota
	TargetCanvas
	TargetButton
	TargetField
)

// Layout places the wireframe canvas above a control bar holding one button
// per action followed by the scale field.
type Layout struct {
	Canvas  image.Rectangle
	Bar     image.Rectangle
	Buttons []Button
	Field   image.Rectangle
	Status  image.Point
}

// Button is a clickable action.
type Button struct {
	Action shell.Action
	Rect   image.Rectangle
}

// NewLayout computes control positions for a w × h window. The controls are
// centred horizontally in the bar.
func NewLayout(w, h int) Layout {
	if h < barHeight {
		h = barHeight
	}
	l := Layout{
		Canvas: image.Rect(0, 0, w, h-barHeight),
		Bar:    image.Rect(0, h-barHeight, w, h),
	}

	n := len(shell.Actions)
	total := n*buttonWidth + fieldWidth + n*controlGap
	x := (w - total) / 2
	if x < controlGap {
		x = controlGap
	}
	y := l.Bar.Min.Y + (barHeight-controlH)/2
	for _, a := range shell.Actions {
		l.Buttons = append(l.Buttons, Button{Action: a, Rect: image.Rect(x, y, x+buttonWidth, y+controlH)})
		x += buttonWidth + controlGap
	}
	l.Field = image.Rect(x, y, x+fieldWidth, y+controlH)
	l.Status = image.Pt(controlGap, statusOffset)
	return l
}

// HitTest reports which control contains (x, y). For TargetButton the
// button's action is returned as well.
func (l Layout) HitTest(x, y int) (Target, shell.Action) {
	p := image.Pt(x, y)
	for _, b := range l.Buttons {
		if p.In(b.Rect) {
			return TargetButton, b.Action
		}
	}
	if p.In(l.Field) {
		return TargetField, 0
	}
	if p.In(l.Canvas) {
		return TargetCanvas, 0
	}
	return TargetNone, 0
}
