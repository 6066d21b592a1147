package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow
	ActionDown         // S, J, Down arrow
	ActionLeft         // A, H, Left arrow
	ActionRight        // D, L, Right arrow
	ActionQuit         // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsTurn reports whether the action is a directional intent.
func (a Action) IsTurn() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame is the ordered batch of actions collected between two ticks.
// Order is preserved so the game can apply turns in the sequence they arrived.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of actions in the frame.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{}
	if len(f.actions) > 0 {
		clone.actions = make([]Action, len(f.actions))
		copy(clone.actions, f.actions)
	}
	return clone
}
