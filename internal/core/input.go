package core

// Action represents a semantic sandbox action, abstracted from physical key
// presses. The platform maps keys to actions; the game consumes intents.
type Action int

const (
	ActionNone       Action = iota
	ActionInventory         // E, I - toggle the inventory panel
	ActionDestroy           // X - remove the block nearest the world center
	ActionBuild             // B - place selected material at the center column
	ActionToggleHUD         // Tab, M - switch between plain and stats overlay
	ActionRegenerate        // R - regenerate the world with a fresh seed
	ActionQuit              // Q, Ctrl+C - leave the sandbox
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionInventory:
		return "Inventory"
	case ActionDestroy:
		return "Destroy"
	case ActionBuild:
		return "Build"
	case ActionToggleHUD:
		return "ToggleHUD"
	case ActionRegenerate:
		return "Regenerate"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind classifies a pointer event within a gesture.
type PointerKind int

const (
	PointerPress      PointerKind = iota // primary button down
	PointerMove                          // motion while a button is held
	PointerRelease                       // primary button up
	PointerRightPress                    // secondary button down
	PointerLeave                         // pointer left the surface
)

// PointerEvent is a single pointer sample in screen cell coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// InputFrame represents the input gathered for one simulation tick: the set
// of triggered actions, an inventory slot selection, and any pointer events
// in arrival order.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Slot is a 1-based inventory slot selection, 0 when none was chosen.
	Slot int

	// Pointer holds the pointer events received this frame, oldest first.
	Pointer []PointerEvent
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

// SetSlot records a 1-based inventory slot selection.
func (f *InputFrame) SetSlot(slot int) {
	f.Slot = slot
}

// AddPointer appends a pointer event to this frame.
func (f *InputFrame) AddPointer(kind PointerKind, x, y int) {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: kind, X: x, Y: y})
}

// Clear resets all actions, the slot, and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Slot = 0
	f.Pointer = f.Pointer[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Slot = f.Slot
	clone.Pointer = append(clone.Pointer, f.Pointer...)
	return clone
}
