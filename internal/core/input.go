package core

// Action represents a semantic host action, abstracted from physical key presses.
// This allows hosts to share bindings with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionStart              // Enter, Space - start a session on the current page
	ActionExit               // X, Esc - leave the running session
	ActionPointerLeft        // Left arrow, H - nudge the pointer left
	ActionPointerRight       // Right arrow, L - nudge the pointer right
	ActionScrollUp           // Up arrow, K, wheel up - scroll the page
	ActionScrollDown         // Down arrow, J, wheel down - scroll the page
	ActionQuit               // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionExit:
		return "Exit"
	case ActionPointerLeft:
		return "PointerLeft"
	case ActionPointerRight:
		return "PointerRight"
	case ActionScrollUp:
		return "ScrollUp"
	case ActionScrollDown:
		return "ScrollDown"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
