package shell

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Action names a user-triggered operation.
type Action int

const (
	ActionRotate Action = iota
	ActionResize
)

// Actions lists every action in the order shells lay out their controls.
var Actions = []Action{ActionRotate, ActionResize}

func (a Action) String() string {
	switch a {
	case ActionRotate:
		return "rotate"
	case ActionResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Label is the text shown on the action's button.
func (a Action) Label() string {
	return cases.Title(language.English).String(a.String())
}

// ParseAction maps a name back to its Action.
func ParseAction(name string) (Action, bool) {
	for _, a := range Actions {
		if a.String() == name {
			return a, true
		}
	}
	return 0, false
}
