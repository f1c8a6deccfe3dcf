package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionAimLeft           // Left, A - rotate the aim counter-clockwise
	ActionAimRight          // Right, D - rotate the aim clockwise
	ActionPowerUp           // Up, W - raise launch power
	ActionPowerDown         // Down, S - lower launch power
	ActionConfirm           // Enter - lock aim, fire, continue after success
	ActionCancel            // Escape, X - drop the current launch gesture
	ActionPause             // Space, P - lock/fire while aiming, pause/resume in flight
	ActionFaster            // +, =, ] - raise the simulation rate
	ActionSlower            // -, _, [ - lower the simulation rate
	ActionToggleGrid        // G - show or hide the field lattice
	ActionRestart           // R - restart the level
	ActionNext              // N - skip to the next level
	ActionBack              // B - go back to the menu
	ActionQuit              // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionPowerUp:
		return "PowerUp"
	case ActionPowerDown:
		return "PowerDown"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionPause:
		return "Pause"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionToggleGrid:
		return "ToggleGrid"
	case ActionRestart:
		return "Restart"
	case ActionNext:
		return "Next"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind is the phase of a pointer gesture.
type PointerKind uint8

const (
	PointerPress   PointerKind = iota // primary button went down
	PointerDrag                       // moved with the primary button held
	PointerRelease                    // primary button went up
	PointerCancel                     // secondary button
)

// PointerEvent is a mouse event in screen cells.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// InputFrame represents the input for one simulation tick: the actions
// triggered since the last tick and any pointer events, oldest first.
type InputFrame struct {
	Actions  map[Action]bool
	Pointers []PointerEvent
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
	return f.Actions[a]
}

// Point appends a pointer event.
func (f *InputFrame) Point(ev PointerEvent) {
	f.Pointers = append(f.Pointers, ev)
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Pointers) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}
