package core

// Action represents a semantic player intent, abstracted from physical key presses.
// Platform layers map keys, websocket frames or scripted moves to actions.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // H, A, Left arrow
	ActionRight          // L, D, Right arrow
	ActionUp             // K, W, Up arrow
	ActionDown           // J, S, Down arrow
	ActionRestart        // R - start a new session
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the shift direction for a movement action.
// Non-movement actions return DirNone and false.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	default:
		return DirNone, false
	}
}

// ActionFor returns the movement action for a direction.
func ActionFor(d Direction) Action {
	switch d {
	case DirLeft:
		return ActionLeft
	case DirRight:
		return ActionRight
	case DirUp:
		return ActionUp
	case DirDown:
		return ActionDown
	default:
		return ActionNone
	}
}
