// Package input turns device key codes into game actions and applies them
// to an engine.
package input

import (
	"sort"

	"github.com/plus3/blockfall/engine"
)

// Action is a high-level player intent.
type Action int

const (
	ActionNone Action = iota

	ActionMoveLeft
	ActionMoveRight
	ActionRotate
	// ActionSoftDrop is a single soft-drop step, for devices without
	// key release events.
	ActionSoftDrop
	ActionSoftDropPress
	ActionSoftDropRelease
	ActionHardDrop
	ActionHold

	// ActionStart starts, pauses and resumes, or restarts a finished game.
	ActionStart
	ActionReset
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "Soft Drop"
	case ActionSoftDropPress:
		return "Soft Drop (press)"
	case ActionSoftDropRelease:
		return "Soft Drop (release)"
	case ActionHardDrop:
		return "Hard Drop"
	case ActionHold:
		return "Hold"
	case ActionStart:
		return "Start/Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// bindings maps device codes to actions. Several codes may share an action.
var bindings = map[string]Action{
	"arrow_left": ActionMoveLeft,
	"h":          ActionMoveLeft,
	"a":          ActionMoveLeft,

	"arrow_right": ActionMoveRight,
	"l":           ActionMoveRight,
	"d":           ActionMoveRight,

	"arrow_up": ActionRotate,
	"k":        ActionRotate,
	"w":        ActionRotate,

	"arrow_down": ActionSoftDrop,
	"j":          ActionSoftDrop,
	"s":          ActionSoftDrop,

	"shift": ActionHardDrop,
	"x":     ActionHardDrop,

	"c": ActionHold,

	"space": ActionStart,
	"p":     ActionStart,

	"r": ActionReset,

	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapCode returns the action bound to code, or ActionNone.
func MapCode(code string) Action {
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// BindingsByAction returns the bound codes grouped by action, sorted so
// help screens stay stable.
func BindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// Apply performs a on e. It reports whether the host should quit.
func Apply(e *engine.Engine, a Action) (quit bool) {
	switch a {
	case ActionMoveLeft:
		e.MoveLeft()
	case ActionMoveRight:
		e.MoveRight()
	case ActionRotate:
		e.RotateCW()
	case ActionSoftDrop:
		e.DropSoft()
	case ActionSoftDropPress:
		e.SetSoftDropHeld(true)
	case ActionSoftDropRelease:
		e.SetSoftDropHeld(false)
	case ActionHardDrop:
		e.DropHard()
	case ActionHold:
		e.Hold()
	case ActionStart:
		if e.State() == engine.StateGameOver {
			e.Reset(true)
		} else {
			e.TogglePause()
		}
	case ActionReset:
		e.Reset(true)
	case ActionQuit:
		return true
	}
	return false
}
