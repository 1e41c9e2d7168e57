package types

type Action uint8

const (
	// ActionNone is the zero value and stands for unrecognized input.
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	}
	return "None"
}

// InputEvent is one discrete key transition as delivered by the host.
type InputEvent struct {
	RawCode int  `json:"rawCode"`
	Pressed bool `json:"pressed"`
}

// PointerEvent is a click at a world-space position.
type PointerEvent struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
