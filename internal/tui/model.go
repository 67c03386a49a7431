package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"octahedron-viewer/internal/framecache"
	"octahedron-viewer/internal/raster"
	"octahedron-viewer/internal/shell"
)

// chrome is the number of terminal rows used by everything but the canvas:
// title, two border rows, controls and status.
const chrome = 5

// Model is the Bubble Tea model for the terminal viewer.
type Model struct {
	ctl    *shell.Controller
	input  textinput.Model
	styles Styles
	log    *slog.Logger

	// Virtual viewport the wireframe is projected into before being
	// mapped onto terminal cells.
	viewW, viewH int

	frames    *framecache.Cache[string]
	cacheSize int

	width, height int
	status        string
	err           error
	redraws       int
}

// New creates the terminal model. viewW × viewH is the pixel viewport the
// model is projected into; scale is the initial text of the scale field.
func New(ctl *shell.Controller, viewW, viewH int, scale string, cacheSize int, log *slog.Logger) (*Model, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	frames, err := framecache.New[string](cacheSize)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Prompt = "scale> "
	ti.CharLimit = 32
	ti.Width = 12
	ti.SetValue(scale)
	ti.Focus()

	m := &Model{
		ctl:       ctl,
		input:     ti,
		styles:    DefaultStyles(),
		log:       log,
		viewW:     viewW,
		viewH:     viewH,
		frames:    frames,
		cacheSize: cacheSize,
		width:     80,
		height:    24,
	}
	ctl.SetRedraw(func() { m.redraws++ })
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// Cached canvases are sized for the old terminal.
		if frames, err := framecache.New[string](m.cacheSize); err == nil {
			m.frames = frames
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "r", "R":
			m.dispatch(shell.ActionRotate, "")
			return m, nil
		case "enter":
			m.dispatch(shell.ActionResize, m.input.Value())
			return m, nil
		}
		if msg.Type == tea.KeyRunes && !numericRunes(msg.Runes) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) dispatch(a shell.Action, input string) {
	if err := m.ctl.Dispatch(a, input); err != nil {
		m.err = err
		m.status = ""
		return
	}
	m.err = nil
	m.status = fmt.Sprintf("%s ok", a.Label())
	if a == shell.ActionResize {
		m.status = fmt.Sprintf("%s ×%s", a.Label(), strings.TrimSpace(input))
	}
}

func (m *Model) View() string {
	cols := m.width - 2
	rows := m.height - chrome
	if cols < 1 || rows < 1 {
		return "terminal too small"
	}

	canvas, err := m.canvas(cols, rows)
	if err != nil {
		canvas = m.styles.Error.Render(err.Error())
	}

	var buttons []string
	for _, a := range shell.Actions {
		buttons = append(buttons, m.styles.Button.Render(a.Label()))
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Center,
		buttons[0], " ", buttons[1], " ", m.input.View(),
		m.styles.Muted.Render("  r rotate · enter resize · q quit"))

	status := m.styles.Status.Render(m.status)
	if m.err != nil {
		status = m.styles.Error.Render(m.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Octahedron Drawing"),
		m.styles.Canvas.Render(canvas),
		controls,
		status,
	)
}

func (m *Model) canvas(cols, rows int) (string, error) {
	segs, err := raster.Project(m.ctl.Model(), m.viewW, m.viewH)
	if err != nil {
		return "", err
	}
	return m.frames.GetOrRender(raster.FrameOf(segs), func() (string, error) {
		m.log.Debug("canvas miss", "cols", cols, "rows", rows)
		c := NewCanvas(cols, rows)
		c.Plot(segs, m.viewW, m.viewH)
		return c.String(), nil
	})
}

// Redraws reports how many successful mutations asked for a redraw.
func (m *Model) Redraws() int {
	return m.redraws
}

func numericRunes(rs []rune) bool {
	for _, r := range rs {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}

// Run starts the terminal viewer and blocks until the user quits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
