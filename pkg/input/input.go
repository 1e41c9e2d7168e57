// Package input maps raw key codes to board actions.
package input

import (
	"github.com/cbodonnell/tictactoe/pkg/game/types"
)

// Raw key codes understood by the classifier. Each direction has a letter
// alias (WASD) and an arrow alias.
const (
	KeyCodeSpace = 32
	KeyCodeLeft  = 37
	KeyCodeUp    = 38
	KeyCodeRight = 39
	KeyCodeDown  = 40
	KeyCodeA     = 65
	KeyCodeD     = 68
	KeyCodeS     = 83
	KeyCodeW     = 87
)

// Classify returns the action bound to rawCode. The boolean is false for
// codes with no binding.
func Classify(rawCode int) (types.Action, bool) {
	switch rawCode {
	case KeyCodeW, KeyCodeUp:
		return types.ActionUp, true
	case KeyCodeS, KeyCodeDown:
		return types.ActionDown, true
	case KeyCodeA, KeyCodeLeft:
		return types.ActionLeft, true
	case KeyCodeD, KeyCodeRight:
		return types.ActionRight, true
	case KeyCodeSpace:
		return types.ActionConfirm, true
	default:
		return types.ActionNone, false
	}
}

// ClassifyEvent is Classify for press transitions. Releases never produce an
// action.
func ClassifyEvent(event types.InputEvent) (types.Action, bool) {
	if !event.Pressed {
		return types.ActionNone, false
	}
	return Classify(event.RawCode)
}
