package shell

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"octahedron-viewer/internal/solid"
)

var (
	ErrBadFactor     = errors.New("shell: scale is not a number")
	ErrUnknownAction = errors.New("shell: unknown action")
)

// Handler applies one action to the model. input is the raw text of the
// shell's scale field; actions that take no argument ignore it.
type Handler func(m *solid.Model, input string) error

// Controller owns the model for a UI shell and routes actions through a
// callback table. It is not safe for concurrent use: shells call it from
// their single update loop.
type Controller struct {
	model    *solid.Model
	handlers map[Action]Handler
	redraw   func()
	log      *slog.Logger
}

// NewController wires the default rotate and resize handlers. redraw runs
// after every successful mutation and may be nil.
func NewController(m *solid.Model, redraw func()) *Controller {
	c := &Controller{
		model:    m,
		handlers: make(map[Action]Handler),
		redraw:   redraw,
		log:      slog.New(slog.DiscardHandler),
	}
	c.Handle(ActionRotate, func(m *solid.Model, _ string) error {
		m.RotateStep()
		return nil
	})
	c.Handle(ActionResize, func(m *solid.Model, input string) error {
		f, err := ParseFactor(input)
		if err != nil {
			return err
		}
		m.Resize(f)
		return nil
	})
	return c
}

// SetLogger sets the logger for dispatch events. nil restores the silent default.
func (c *Controller) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	c.log = l
}

// Handle installs or replaces the handler for a.
func (c *Controller) Handle(a Action, fn Handler) {
	c.handlers[a] = fn
}

// SetRedraw replaces the redraw callback.
func (c *Controller) SetRedraw(fn func()) {
	c.redraw = fn
}

// Model returns the owned model for read access.
func (c *Controller) Model() *solid.Model {
	return c.model
}

// Dispatch runs the handler for a. The model is left unchanged and no
// redraw happens when the handler fails.
func (c *Controller) Dispatch(a Action, input string) error {
	h, ok := c.handlers[a]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownAction, int(a))
	}
	if err := h(c.model, input); err != nil {
		c.log.Warn("action rejected", "action", a.String(), "input", input, "err", err)
		return err
	}
	c.log.Debug("action applied", "action", a.String(), "input", input)
	if c.redraw != nil {
		c.redraw()
	}
	return nil
}

// Rotate is shorthand for Dispatch(ActionRotate, "").
func (c *Controller) Rotate() error {
	return c.Dispatch(ActionRotate, "")
}

// Resize dispatches a resize with an already-parsed factor.
func (c *Controller) Resize(factor float64) error {
	return c.Dispatch(ActionResize, strconv.FormatFloat(factor, 'g', -1, 64))
}

// ParseFactor parses a user-typed scale value.
func ParseFactor(input string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadFactor, input)
	}
	return f, nil
}
