package script

import (
	"fmt"

	glua "github.com/yuin/gopher-lua"

	"octahedron-viewer/internal/shell"
	"octahedron-viewer/internal/solid"
)

// Saver renders the current model to a file. The script engine calls it for
// save(path).
type Saver func(m *solid.Model, path string) error

// Engine runs Lua scripts against a controller. Globals:
//
//	rotate()            one rotation step
//	resize(f)           resize by f
//	vertex(i) -> x,y,z  current coordinates of vertex i (0-based)
//	edges() -> n        number of edges
//	save(path)          render the current frame to path
type Engine struct {
	L     *glua.LState
	ctl   *shell.Controller
	saver Saver
}

// NewEngine creates a Lua VM bound to ctl. saver may be nil, in which case
// save() raises an error.
func NewEngine(ctl *shell.Controller, saver Saver) *Engine {
	e := &Engine{
		L:     glua.NewState(),
		ctl:   ctl,
		saver: saver,
	}
	e.registerAPIs()
	return e
}

// Close releases the Lua state.
func (e *Engine) Close() {
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// DoFile runs a script file.
func (e *Engine) DoFile(path string) error {
	if err := e.L.DoFile(path); err != nil {
		return fmt.Errorf("script: %s: %w", path, err)
	}
	return nil
}

// DoString runs a chunk of Lua source.
func (e *Engine) DoString(src string) error {
	if err := e.L.DoString(src); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

func (e *Engine) registerAPIs() {
	e.L.SetGlobal("rotate", e.L.NewFunction(func(L *glua.LState) int {
		if err := e.ctl.Rotate(); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}))

	e.L.SetGlobal("resize", e.L.NewFunction(func(L *glua.LState) int {
		f := float64(L.CheckNumber(1))
		if err := e.ctl.Resize(f); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}))

	// vertex(i): out-of-range indices are a script bug and abort the run.
	e.L.SetGlobal("vertex", e.L.NewFunction(func(L *glua.LState) int {
		i := L.CheckInt(1)
		v, err := e.ctl.Model().VertexAt(i)
		if err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		L.Push(glua.LNumber(v[0]))
		L.Push(glua.LNumber(v[1]))
		L.Push(glua.LNumber(v[2]))
		return 3
	}))

	e.L.SetGlobal("edges", e.L.NewFunction(func(L *glua.LState) int {
		L.Push(glua.LNumber(len(e.ctl.Model().Edges())))
		return 1
	}))

	e.L.SetGlobal("save", e.L.NewFunction(func(L *glua.LState) int {
		path := L.CheckString(1)
		if e.saver == nil {
			L.RaiseError("save: no renderer configured")
			return 0
		}
		if err := e.saver(e.ctl.Model(), path); err != nil {
			L.RaiseError("save: %s", err.Error())
		}
		return 0
	}))
}
