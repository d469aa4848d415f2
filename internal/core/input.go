package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow
	ActionRight           // D, Right arrow
	ActionSoftDrop        // S, Down arrow
	ActionHardDrop        // Space
	ActionRotate          // W, Up arrow
	ActionHold            // C, Shift
	ActionConfirm         // Enter
	ActionBack            // B, Escape
	ActionRestart         // R, after game over
	ActionQuit            // Q, Ctrl+C
	ActionPause           // P
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
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotate:
		return "Rotate"
	case ActionHold:
		return "Hold"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one simulation tick.
// Order of arrival is kept so that a rotate followed by a move within the
// same tick is applied in that order.
type InputFrame struct {
	Actions map[Action]bool
	order   []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	if !f.Actions[a] {
		f.order = append(f.order, a)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Ordered returns the triggered actions in arrival order.
func (f InputFrame) Ordered() []Action {
	out := make([]Action, len(f.order))
	copy(out, f.order)
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.order = f.order[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for _, a := range f.order {
		clone.Set(a)
	}
	return clone
}
