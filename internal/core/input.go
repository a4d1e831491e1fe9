package core

// Action represents a semantic game intent, abstracted from physical key
// presses. The platform maps keys to actions; the game never sees raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionLeft                 // Left arrow, H - shift piece left
	ActionRight                // Right arrow, L - shift piece right
	ActionSoftDrop             // Down arrow, J - one-row soft drop
	ActionRotate               // Up arrow, K - rotate clockwise
	ActionHardDrop             // Space - drop and commit immediately
	ActionToggleAdvisor        // A - toggle move advisor overlay
	ActionToggleGhost          // G - toggle landing ghost piece
	ActionCycleTheme           // T - cycle color theme
	ActionPause                // P, Escape - pause/unpause
	ActionRestart              // R - restart after game over
	ActionQuit                 // Q, Ctrl+C - exit game/session
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
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionToggleAdvisor:
		return "ToggleAdvisor"
	case ActionToggleGhost:
		return "ToggleGhost"
	case ActionCycleTheme:
		return "CycleTheme"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
